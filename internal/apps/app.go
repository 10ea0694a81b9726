package apps

import "strings"

// Application is one launchable catalog entry. Values are never modified once
// they are in a Catalog.
type Application struct {
	Name        string
	Exec        string
	Icon        string
	Description string
	Keywords    []string
	Terminal    bool
}

// CustomApp is a user-defined entry from the config file.
type CustomApp struct {
	Name     string   `yaml:"name"`
	Exec     string   `yaml:"exec"`
	Icon     string   `yaml:"icon,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

func (c CustomApp) application() Application {
	return Application{
		Name:     c.Name,
		Exec:     c.Exec,
		Icon:     c.Icon,
		Keywords: append([]string(nil), c.Keywords...),
	}
}

// SearchText is the name followed by the keywords, space separated.
func (a Application) SearchText() string {
	if len(a.Keywords) == 0 {
		return a.Name
	}
	return a.Name + " " + strings.Join(a.Keywords, " ")
}
