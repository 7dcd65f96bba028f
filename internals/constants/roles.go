package constants

// Role pengguna sistem kontrol ujian
const (
	RoleAdmin            = "ADMIN"
	RoleControlManager   = "CONTROL_MANAGER"
	RoleProctor          = "PROCTOR"
	RoleControl          = "CONTROL"
	RoleAssistantControl = "ASSISTANT_CONTROL"
	RoleCounselor        = "COUNSELOR"
)

// Template pesan error role
const (
	ErrOnlyProctorsCanAccess = "❌ Hanya pengawas (PROCTOR) yang boleh mengakses fitur ini."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur ini."
	ErrOnlyDeskCanAccess     = "❌ Hanya petugas الكنترول yang boleh mengakses fitur ini."
	ErrOnlyManagersCanAccess = "❌ Hanya admin atau رئيس الكنترول yang boleh mengakses fitur ini."
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleControlManager,
		RoleProctor,
		RoleControl,
		RoleAssistantControl,
		RoleCounselor,
	}

	// Petugas meja estilam (boleh melakukan confirm receipt)
	DeskRoles = []string{
		RoleAdmin,
		RoleControlManager,
		RoleControl,
	}

	// Petugas yang boleh menangani بلاغات (control requests)
	RequestHandlerRoles = []string{
		RoleAdmin,
		RoleControlManager,
		RoleControl,
		RoleAssistantControl,
	}

	ManagerAndAbove = []string{
		RoleControlManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ProctorOnly = []string{
		RoleProctor,
	}
)

func RoleIn(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
