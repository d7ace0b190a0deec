package enum

// TeamRole represents the duty assigned to a crew member
type TeamRole string

const (
	TeamRoleAdministration TeamRole = "administration"
	TeamRoleVolunteer      TeamRole = "volunteer"
	TeamRoleStageCrew      TeamRole = "stage_crew"
	TeamRoleStallCrew      TeamRole = "stall_crew"
)

// IsValid reports whether the role is one of the known values
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleAdministration, TeamRoleVolunteer, TeamRoleStageCrew, TeamRoleStallCrew:
		return true
	}
	return false
}
