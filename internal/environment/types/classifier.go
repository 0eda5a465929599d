package types

import (
	"strconv"
	"strings"
	"unicode"
)

var secretPatterns = []string{
	"secret", "key", "token", "password", "pass", "pwd",
	"auth", "credential", "private", "cert",
	"client_id", "oauth", "jwt", "session", "cookie",
	"salt", "hash", "signature", "signing", "cipher",
	"webhook", "vault",
}

var databasePatterns = []string{
	"database_url", "db_url", "dsn", "connection_string",
	"mongouri", "mongo_uri", "mongo_login", "mongo_password",
}

var urlPatterns = []string{"url", "host", "frontend", "address"}

var systemEnvVars = []string{
	"path", "home", "user", "shell", "pwd", "lang", "term", "tmpdir",
	"ps1", "ps2", "ifs", "mail", "mailpath", "optind", "editor",
	"pager", "browser", "display", "xauthority", "ssh_auth_sock",
	"oldpwd", "shlvl", "hostname", "logname", "uid", "gid",
}

// rule classifies a variable when match reports true. Rules are tried in
// order and the first match wins.
type rule struct {
	envType   EnvType
	sensitive bool
	match     func(nameLower, value string) bool
}

var rules = []rule{
	{EnvTypeGenerated, true, func(_, value string) bool { return looksGenerated(value) }},
	{EnvTypeDatabase, true, containsAny(databasePatterns)},
	{EnvTypeSecret, true, containsAny(secretPatterns)},
	{EnvTypeURL, false, func(nameLower, value string) bool {
		return strings.HasPrefix(value, "http") || containsAny(urlPatterns)(nameLower, value)
	}},
	{EnvTypeBoolean, false, func(nameLower, value string) bool {
		_, err := strconv.ParseBool(value)
		return (value != "" && err == nil && !isNumeric(value)) ||
			strings.HasPrefix(nameLower, "with_") || strings.HasPrefix(nameLower, "open_")
	}},
	{EnvTypeNumeric, false, func(_, value string) bool { return isNumeric(value) }},
}

func containsAny(patterns []string) func(nameLower, value string) bool {
	return func(nameLower, _ string) bool {
		for _, pattern := range patterns {
			if strings.Contains(nameLower, pattern) {
				return true
			}
		}
		return false
	}
}

// ShouldIgnore reports whether name is a shell or session variable that no
// deployment artifact should depend on.
func ShouldIgnore(name string) bool {
	nameLower := strings.ToLower(name)
	for _, sysVar := range systemEnvVars {
		if nameLower == sysVar {
			return true
		}
	}
	return false
}

// ClassifyEnvVar guesses the kind of a variable from its name and value, and
// whether its value must be treated as sensitive.
func ClassifyEnvVar(name, value string) (EnvType, bool) {
	if ShouldIgnore(name) {
		return EnvTypeUnknown, false
	}

	nameLower := strings.ToLower(name)
	for _, r := range rules {
		if r.match(nameLower, value) {
			return r.envType, r.sensitive
		}
	}
	return EnvTypeConfig, false
}

// looksGenerated spots uuids, nanoids, JWTs and other random-looking values.
func looksGenerated(value string) bool {
	switch {
	case len(value) < 8:
		return false
	case len(value) == 36 && strings.Count(value, "-") == 4:
		return true
	case len(value) >= 16 && isURLSafeBase64(value):
		return true
	case len(value) > 50 && strings.Count(value, ".") == 2:
		return true
	}
	return len(value) >= 20 && uniqueRatio(value) > 0.5 && containsMixedCase(value)
}

func isURLSafeBase64(s string) bool {
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func uniqueRatio(value string) float64 {
	seen := make(map[rune]struct{})
	for _, r := range value {
		seen[r] = struct{}{}
	}
	return float64(len(seen)) / float64(len(value))
}

func containsMixedCase(value string) bool {
	return strings.IndexFunc(value, unicode.IsUpper) >= 0 && strings.IndexFunc(value, unicode.IsLower) >= 0
}

func isNumeric(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}
