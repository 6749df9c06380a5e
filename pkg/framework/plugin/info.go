package plugin

import "fmt"

// Info contains plugin metadata
type Info struct {
	ID       string // Unique plugin identifier (e.g., "com.example.myplugin")
	Name     string // Display name
	Version  string // Semantic version (e.g., "1.0.0")
	Vendor   string // Company/developer name
	Category string // Plugin category (e.g., "Fx", "Instrument")
}

// String returns a one-line banner such as "Visual 1.0.0 (MusicDevLife, Fx)".
func (i Info) String() string {
	if i.Category == "" {
		return fmt.Sprintf("%s %s (%s)", i.Name, i.Version, i.Vendor)
	}
	return fmt.Sprintf("%s %s (%s, %s)", i.Name, i.Version, i.Vendor, i.Category)
}
