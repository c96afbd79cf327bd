package hl7

import (
	"strings"

	"xds/pkg/metadata"
)

// PID field prefixes used in the sourcePatientInfo slot.
const (
	pidIdentifiers = "PID-3"
	pidName        = "PID-5"
	pidBirthDate   = "PID-7"
	pidGender      = "PID-8"
)

// RenderPatientInfo renders patient demographics as PID field lines in the
// order PID-3 (one line per id), PID-5, PID-7, PID-8.
func RenderPatientInfo(info *metadata.PatientInfo) []string {
	if info == nil {
		return nil
	}

	var lines []string
	for i := range info.IDs {
		lines = append(lines, pidIdentifiers+fieldSeparator+RenderCX(&info.IDs[i]))
	}
	if info.Name != nil {
		lines = append(lines, pidName+fieldSeparator+RenderXPN(info.Name))
	}
	if info.DateOfBirth != "" {
		lines = append(lines, pidBirthDate+fieldSeparator+info.DateOfBirth)
	}
	if info.Gender != "" {
		lines = append(lines, pidGender+fieldSeparator+info.Gender)
	}

	return lines
}

// ParsePatientInfo parses PID field lines. Unknown fields are ignored. It
// returns nil when lines is empty.
func ParsePatientInfo(lines []string) *metadata.PatientInfo {
	if len(lines) == 0 {
		return nil
	}

	info := &metadata.PatientInfo{}
	for _, line := range lines {
		field, value, ok := strings.Cut(line, fieldSeparator)
		if !ok {
			continue
		}
		switch field {
		case pidIdentifiers:
			if id := ParseCX(value); id != nil {
				info.IDs = append(info.IDs, *id)
			}
		case pidName:
			info.Name = ParseXPN(value)
		case pidBirthDate:
			info.DateOfBirth = value
		case pidGender:
			info.Gender = value
		}
	}

	return info
}
