package randomuser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/five82/roster/internal/directory"
)

// Response mirrors the payload returned by the randomuser API.
type Response struct {
	Results []User `json:"results"`
	Info    Info   `json:"info"`
	Error   string `json:"error"`
}

// Info echoes the request parameters the API used.
type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// User is one generated person, restricted to the fields requested via inc=.
type User struct {
	Name     Name        `json:"name"`
	Location Location    `json:"location"`
	Email    string      `json:"email"`
	DOB      DateOfBirth `json:"dob"`
	Phone    string      `json:"phone"`
	Cell     string      `json:"cell"`
	Picture  Picture     `json:"picture"`
}

// Name holds the person's name parts.
type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Location is the postal address.
type Location struct {
	Street   Street    `json:"street"`
	City     string    `json:"city"`
	State    string    `json:"state"`
	Country  string    `json:"country"`
	Postcode FlexValue `json:"postcode"`
}

// Street is the street part of the address.
type Street struct {
	Number FlexValue `json:"number"`
	Name   string    `json:"name"`
}

// DateOfBirth carries the RFC 3339 birth timestamp.
type DateOfBirth struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

// Picture links to portrait images.
type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// FlexValue decodes a JSON string or number into its textual form. The API
// returns US postcodes as numbers and most others as strings.
type FlexValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = FlexValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	*v = FlexValue(n.String())
	return nil
}

// Record maps the API shape into a directory record.
func (u User) Record() directory.Record {
	return directory.Record{
		PictureURL:   strings.TrimSpace(u.Picture.Large),
		FirstName:    strings.TrimSpace(u.Name.First),
		LastName:     strings.TrimSpace(u.Name.Last),
		Email:        strings.TrimSpace(u.Email),
		City:         strings.TrimSpace(u.Location.City),
		Region:       strings.TrimSpace(u.Location.State),
		Phone:        strings.TrimSpace(u.Phone),
		Mobile:       strings.TrimSpace(u.Cell),
		StreetNumber: strings.TrimSpace(string(u.Location.Street.Number)),
		StreetName:   strings.TrimSpace(u.Location.Street.Name),
		PostalCode:   strings.TrimSpace(string(u.Location.Postcode)),
		BirthDate:    parseTime(u.DOB.Date),
	}
}

// Records maps every user in the response, preserving order.
func (r Response) Records() directory.RecordSet {
	out := make(directory.RecordSet, 0, len(r.Results))
	for _, u := range r.Results {
		out = append(out, u.Record())
	}
	return out
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
