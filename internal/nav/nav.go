// Package nav composes the role-gated sidebar navigation. It is a static
// lookup per role, not a permission system.
package nav

import (
	"strings"

	"gearshift-backend/internal/models"
)

type Entry struct {
	Title  string `json:"title"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var (
	dashboard = Entry{Title: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"}
	jobs      = Entry{Title: "Jobs", Path: "/jobs", Icon: "list"}
	customers = Entry{Title: "Customers", Path: "/customers", Icon: "users"}
	mechanics = Entry{Title: "Mechanics", Path: "/mechanics", Icon: "users"}
	vehicles  = Entry{Title: "Vehicles", Path: "/vehicles", Icon: "car"}
	settings  = Entry{Title: "Settings", Path: "/settings", Icon: "settings"}
)

var navByRole = map[models.UserRole][]Entry{
	models.RoleSuperAdmin: {dashboard, jobs, customers, mechanics, vehicles, settings},
	models.RoleAdmin:      {dashboard, jobs, customers, mechanics, vehicles, settings},
	models.RoleMechanic:   {dashboard, jobs},
}

// ForRole returns the ordered entry list for a role. Unknown or missing
// roles get the most restrictive list (mechanic).
func ForRole(role models.UserRole) []Entry {
	entries, ok := navByRole[role]
	if !ok {
		entries = navByRole[models.RoleMechanic]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// MarkActive flags the entries whose path equals or prefixes the current
// path.
func MarkActive(entries []Entry, currentPath string) []Entry {
	for i := range entries {
		entries[i].Active = currentPath == entries[i].Path ||
			strings.HasPrefix(currentPath, entries[i].Path+"/")
	}
	return entries
}
