package types

type EnvType int

const (
	EnvTypeUnknown EnvType = iota
	EnvTypeSecret
	EnvTypeDatabase
	EnvTypeConfig
	EnvTypeGenerated // Detected as generated (nanoid, uuid, random string)
	EnvTypeURL
	EnvTypeBoolean
	EnvTypeNumeric
)

func (t EnvType) String() string {
	switch t {
	case EnvTypeSecret:
		return "secret"
	case EnvTypeDatabase:
		return "database"
	case EnvTypeGenerated:
		return "generated"
	case EnvTypeURL:
		return "url"
	case EnvTypeBoolean:
		return "boolean"
	case EnvTypeNumeric:
		return "numeric"
	case EnvTypeConfig:
		return "config"
	default:
		return "unknown"
	}
}

// EnvResult describes one variable a rendered artifact expects at deploy time.
type EnvResult struct {
	VarName   string
	Value     string // value found in the environment snapshot, if Set
	Default   string // default declared in the artifact (${VAR:-default})
	Required  bool   // declared with ${VAR:?err}
	Set       bool
	Type      EnvType
	Sensitive bool
	Source    string // e.g., "dotenv:.env", "process"
}
