package types

import "fmt"

type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RolePharmacist Role = "pharmacist"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RolePatient, RoleDoctor, RolePharmacist:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
