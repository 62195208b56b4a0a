package directory

import (
	"fmt"
	"strings"
	"time"
)

const birthdayLayout = "01/02/2006"

// Record is one personnel entry. Values are never mutated after construction.
type Record struct {
	PictureURL   string
	FirstName    string
	LastName     string
	Email        string
	City         string
	Region       string // full region name, e.g. "California"
	Phone        string
	Mobile       string
	StreetNumber string
	StreetName   string
	PostalCode   string
	BirthDate    time.Time
}

// RecordSet is an ordered sequence of records. Position is the only identity.
type RecordSet []Record

// FullName joins first and last name with a single space.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}

// RegionCode returns the postal abbreviation for the region when one is known.
func (r Record) RegionCode() string {
	return RegionCode(r.Region)
}

// Locality renders "city, region" for summary cards.
func (r Record) Locality() string {
	switch {
	case r.City == "":
		return r.Region
	case r.Region == "":
		return r.City
	}
	return r.City + ", " + r.Region
}

// AddressLine renders the street address with the abbreviated region.
func (r Record) AddressLine() string {
	street := strings.TrimSpace(r.StreetNumber + " " + r.StreetName)
	tail := strings.TrimSpace(r.RegionCode() + " " + r.PostalCode)
	if street == "" {
		return tail
	}
	if tail == "" {
		return street
	}
	return fmt.Sprintf("%s, %s", street, tail)
}

// Birthday formats the birth date as MM/DD/YYYY in UTC, or "" when unknown.
func (r Record) Birthday() string {
	if r.BirthDate.IsZero() {
		return ""
	}
	return r.BirthDate.UTC().Format(birthdayLayout)
}

func cloneRecords(records RecordSet) RecordSet {
	if len(records) == 0 {
		return RecordSet{}
	}
	dup := make(RecordSet, len(records))
	copy(dup, records)
	return dup
}
