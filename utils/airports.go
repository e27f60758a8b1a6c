// utils/airports.go
package utils

import "strings"

// Codes stored in the iata_code, airline_code and airport columns are at most
// three upper-case letters or digits.
const maxCodeLen = 3

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeAirlineCode upper-cases and trims a carrier code.
func NormalizeAirlineCode(code string) string {
	return normalizeCode(code)
}

// NormalizeAirportCode upper-cases and trims an airport code. A US ICAO code
// ("KJFK") becomes its IATA form ("JFK") when the remainder is a valid code;
// other ICAO codes ("YSSY") are returned unchanged and fail IsIATACode.
func NormalizeAirportCode(code string) string {
	c := normalizeCode(code)
	if len(c) == maxCodeLen+1 && c[0] == 'K' && IsIATACode(c[1:]) {
		return c[1:]
	}
	return c
}

// IsIATACode reports whether code fits the iata_code columns.
func IsIATACode(code string) bool {
	if code == "" || len(code) > maxCodeLen {
		return false
	}
	return strings.IndexFunc(code, func(c rune) bool {
		return (c < 'A' || c > 'Z') && (c < '0' || c > '9')
	}) < 0
}
