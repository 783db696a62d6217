package analytics

// ReliefCategory classifies free-text injunctive relief entries by
// case-insensitive trigger substrings. Categories are not mutually
// exclusive; one entry may trigger several.
type ReliefCategory struct {
	Key      string
	Label    string
	Triggers []string
}

// ReliefCategoryTable is versioned configuration data consumed by the
// breakdown engine. Category definitions evolve here without touching
// the counting algorithm.
type ReliefCategoryTable struct {
	Version    string
	Categories []ReliefCategory
}

// DefaultReliefCategories is the current classification table for data
// breach settlement relief measures.
var DefaultReliefCategories = ReliefCategoryTable{
	Version: "2024-06",
	Categories: []ReliefCategory{
		{Key: "employee_training", Label: "Employee training", Triggers: []string{"training", "security awareness"}},
		{Key: "mfa", Label: "Multi-factor authentication", Triggers: []string{"multi-factor", "multifactor", "mfa", "two-factor"}},
		{Key: "data_encryption", Label: "Data encryption", Triggers: []string{"encrypt"}},
		{Key: "vendor_requirements", Label: "Vendor requirements", Triggers: []string{"vendor", "third-party requirement"}},
		{Key: "security_audits", Label: "Security audits and assessments", Triggers: []string{"audit", "risk assessment", "security assessment"}},
		{Key: "penetration_testing", Label: "Penetration testing", Triggers: []string{"penetration", "pen test"}},
		{Key: "incident_response", Label: "Incident response plan", Triggers: []string{"incident response"}},
		{Key: "data_minimization", Label: "Data minimization and deletion", Triggers: []string{"data minimization", "data deletion", "retention"}},
		{Key: "board_oversight", Label: "Board or executive oversight", Triggers: []string{"board", "oversight committee"}},
		{Key: "ciso", Label: "Dedicated security leadership", Triggers: []string{"ciso", "chief information security"}},
		{Key: "access_controls", Label: "Access controls", Triggers: []string{"access control", "least privilege"}},
		{Key: "monitoring_logging", Label: "Network monitoring and logging", Triggers: []string{"network monitoring", "logging", "intrusion detection"}},
	},
}
