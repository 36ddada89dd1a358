package services

const maxSuggestedRoles = 3

// roleRules are evaluated in order; every rule whose condition holds appends
// its role, so one skill set can yield several roles.
var roleRules = []struct {
	role  string
	match func(has func(string) bool) bool
}{
	{"Python Developer", func(has func(string) bool) bool {
		return has("python") && has("flask")
	}},
	{"Frontend Developer", func(has func(string) bool) bool {
		return has("html") && has("css") && has("javascript")
	}},
	{"Machine Learning Engineer", func(has func(string) bool) bool {
		return has("machine learning") || has("nlp")
	}},
	{"Backend Developer", func(has func(string) bool) bool {
		return has("sql") || has("mongodb")
	}},
	{"Cloud Engineer", func(has func(string) bool) bool {
		return has("aws") || has("docker")
	}},
}

// SuggestRoles maps a resume's skill set to at most three role names in rule
// order, falling back to "Software Engineer" when nothing matches.
func SuggestRoles(skills []string) []string {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		set[skill] = true
	}
	has := func(skill string) bool { return set[skill] }

	roles := make([]string, 0, maxSuggestedRoles)
	for _, rule := range roleRules {
		if rule.match(has) {
			roles = append(roles, rule.role)
		}
	}

	if len(roles) == 0 {
		roles = append(roles, "Software Engineer")
	}
	if len(roles) > maxSuggestedRoles {
		roles = roles[:maxSuggestedRoles]
	}
	return roles
}
