package directory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_DisplayHelpers(t *testing.T) {
	rec := Record{
		FirstName:    "Joan",
		LastName:     "Meyer",
		City:         "Fresno",
		Region:       "California",
		StreetNumber: "4821",
		StreetName:   "Oak Lawn Ave",
		PostalCode:   "93706",
		BirthDate:    time.Date(1975, time.July, 4, 23, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, "Joan Meyer", rec.FullName())
	assert.Equal(t, "CA", rec.RegionCode())
	assert.Equal(t, "Fresno, California", rec.Locality())
	assert.Equal(t, "4821 Oak Lawn Ave, CA 93706", rec.AddressLine())
	assert.Equal(t, "07/04/1975", rec.Birthday())
}

func TestRecord_HelpersHandleMissingParts(t *testing.T) {
	var rec Record
	assert.Equal(t, "", rec.Birthday())
	assert.Equal(t, "", rec.AddressLine())
	assert.Equal(t, "", rec.Locality())

	rec.Region = "Ontario"
	assert.Equal(t, "Ontario", rec.RegionCode(), "unknown regions are not abbreviated")
	assert.Equal(t, "Ontario", rec.Locality())
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &NetworkError{Op: "fetch records", Err: cause}

	assert.Equal(t, "fetch records: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "network error: dial tcp: refused", (&NetworkError{Err: cause}).Error())
}
