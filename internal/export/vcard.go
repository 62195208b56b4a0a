// Package export writes directory records as vCard 4.0 cards.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/five82/roster/internal/directory"
)

const birthdayLayout = "20060102"

// Card converts a record into a vCard.
func Card(rec directory.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldFormattedName, rec.FullName())
	card.SetName(&vcard.Name{
		GivenName:  rec.FirstName,
		FamilyName: rec.LastName,
	})
	if rec.Email != "" {
		card.SetValue(vcard.FieldEmail, rec.Email)
	}
	if rec.Mobile != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  rec.Mobile,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}
	if rec.Phone != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  rec.Phone,
			Params: vcard.Params{vcard.ParamType: {vcard.TypeHome}},
		})
	}
	if rec.City != "" || rec.StreetName != "" || rec.PostalCode != "" {
		card.AddAddress(&vcard.Address{
			StreetAddress: strings.TrimSpace(rec.StreetNumber + " " + rec.StreetName),
			Locality:      rec.City,
			Region:        rec.RegionCode(),
			PostalCode:    rec.PostalCode,
		})
	}
	if !rec.BirthDate.IsZero() {
		card.SetValue(vcard.FieldBirthday, rec.BirthDate.UTC().Format(birthdayLayout))
	}
	if rec.PictureURL != "" {
		card.SetValue(vcard.FieldPhoto, rec.PictureURL)
	}
	return card
}

// Write encodes records to w, one card after another.
func Write(w io.Writer, records directory.RecordSet) error {
	enc := vcard.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(Card(rec)); err != nil {
			return fmt.Errorf("encode %s: %w", rec.FullName(), err)
		}
	}
	return nil
}

// SaveRecord writes one record to <dir>/<first>-<last>.vcf and returns the
// path written.
func SaveRecord(dir string, rec directory.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(rec))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create card: %w", err)
	}
	if err := Write(file, directory.RecordSet{rec}); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close card: %w", err)
	}
	return path, nil
}

// FileName derives a filesystem-safe card name from the record's name.
func FileName(rec directory.Record) string {
	var b strings.Builder
	for _, r := range strings.ToLower(rec.FirstName + "-" + rec.LastName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "contact"
	}
	return name + ".vcf"
}
