package model

// LoginPageProps are the values resolved for every request to the login page
type LoginPageProps struct {
	IsLocalhost    bool
	IsCORSError    bool
	CORSOriginURL  *string
	Cad            *Settings
	SavedLocale    *string
	SavedDarkTheme *string
}

// DarkTheme tells whether the user chose the dark theme last time they visited
func (p LoginPageProps) DarkTheme() bool {
	return p.SavedDarkTheme != nil && *p.SavedDarkTheme == "true"
}
