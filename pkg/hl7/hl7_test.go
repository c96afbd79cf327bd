package hl7_test

import (
	"testing"
	"xds/pkg/hl7"
	"xds/pkg/metadata"

	"github.com/stretchr/testify/require"
)

func iso(oid string) *metadata.AssigningAuthority {
	return &metadata.AssigningAuthority{UniversalID: oid, UniversalIDType: "ISO"}
}

func TestCX(t *testing.T) {
	cases := []struct {
		name string
		in   *metadata.Identifiable
		out  string
	}{
		{name: "nil", in: nil, out: ""},
		{name: "id only", in: &metadata.Identifiable{ID: "1234"}, out: "1234"},
		{
			name: "id with authority",
			in:   &metadata.Identifiable{ID: "1234", AssigningAuthority: iso("1.2.3")},
			out:  "1234^^^&1.2.3&ISO",
		},
		{
			name: "authority without type",
			in:   &metadata.Identifiable{ID: "1234", AssigningAuthority: &metadata.AssigningAuthority{UniversalID: "1.2.3"}},
			out:  "1234^^^&1.2.3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := hl7.RenderCX(tc.in)
			require.Equal(t, tc.out, rendered)
			require.True(t, tc.in.Equal(hl7.ParseCX(rendered)), "parsed %q", rendered)
		})
	}
}

func TestXCN(t *testing.T) {
	p := &metadata.Person{
		ID:   &metadata.Identifiable{ID: "id-1", AssigningAuthority: iso("1.1.1")},
		Name: &metadata.Name{FamilyName: "Smith", GivenName: "Jane", Prefix: "Dr."},
	}
	rendered := hl7.RenderXCN(p)
	require.Equal(t, "id-1^Smith^Jane^^^Dr.^^^&1.1.1&ISO", rendered)
	require.True(t, p.Equal(hl7.ParseXCN(rendered)))

	nameOnly := &metadata.Person{Name: &metadata.Name{FamilyName: "Smith"}}
	rendered = hl7.RenderXCN(nameOnly)
	require.Equal(t, "^Smith", rendered)
	require.True(t, nameOnly.Equal(hl7.ParseXCN(rendered)))

	require.Nil(t, hl7.ParseXCN(""))
}

func TestXON(t *testing.T) {
	o := &metadata.Organization{Name: "Some Hospital", IDNumber: "45", AssigningAuthority: iso("1.2.3.4.5")}
	rendered := hl7.RenderXON(o)
	require.Equal(t, "Some Hospital^^^^^&1.2.3.4.5&ISO^^^^45", rendered)
	require.True(t, o.Equal(hl7.ParseXON(rendered)))

	plain := &metadata.Organization{Name: "Clinic"}
	require.Equal(t, "Clinic", hl7.RenderXON(plain))
	require.True(t, plain.Equal(hl7.ParseXON("Clinic")))
}

func TestPatientInfo(t *testing.T) {
	info := &metadata.PatientInfo{
		IDs: []metadata.Identifiable{
			{ID: "pid1", AssigningAuthority: iso("1.2.3")},
			{ID: "pid2", AssigningAuthority: iso("4.5.6")},
		},
		Name:        &metadata.Name{FamilyName: "Doe", GivenName: "John"},
		DateOfBirth: "19560527",
		Gender:      "M",
	}

	lines := hl7.RenderPatientInfo(info)
	require.Equal(t, []string{
		"PID-3|pid1^^^&1.2.3&ISO",
		"PID-3|pid2^^^&4.5.6&ISO",
		"PID-5|Doe^John",
		"PID-7|19560527",
		"PID-8|M",
	}, lines)
	require.True(t, info.Equal(hl7.ParsePatientInfo(lines)))

	require.Nil(t, hl7.RenderPatientInfo(nil))
	require.Nil(t, hl7.ParsePatientInfo(nil))

	parsed := hl7.ParsePatientInfo([]string{"PID-11|100 Main St", "garbage", "PID-8|F"})
	require.Equal(t, "F", parsed.Gender)
	require.Empty(t, parsed.IDs)
}
