package preset

const (
	defaultAPIPrefix    = "api"
	defaultProxyNetwork = "nginx-proxy"
	defaultProjectName  = "audit-backend"
)

// Builtin returns the presets shipped with stackgen. Every call returns a fresh
// table, so callers can never alter the defaults seen by another caller.
func Builtin() Table {
	return Table{
		"dev": {
			OpenDatabase:       Bool(true),
			WithProxy:          Bool(false),
			ContainerNamespace: String("dev"),
			VolumeNamespace:    String("dev"),
			NetworkNamespace:   String("dev"),
			APIPrefix:          String(defaultAPIPrefix),
			ProxyNetwork:       String(defaultProxyNetwork),
			ProjectName:        String(defaultProjectName),
			Addresses: map[string]string{
				"auditors":     "0.0.0.0:3004",
				"audits":       "0.0.0.0:3003",
				"chat":         "0.0.0.0:3012",
				"customers":    "0.0.0.0:3002",
				"event":        "0.0.0.0:3010",
				"files":        "0.0.0.0:3005",
				"mail":         "0.0.0.0:3007",
				"notification": "0.0.0.0:3008",
				"renderer":     "0.0.0.0:3015",
				"report":       "0.0.0.0:3011",
				"search":       "0.0.0.0:3006",
				"telemetry":    "0.0.0.0:3009",
				"users":        "0.0.0.0:3001",
				"frontend":     "dev.auditdb.io",
			},
		},
		"test": {
			OpenDatabase:       Bool(true),
			WithProxy:          Bool(true),
			ContainerNamespace: String("test"),
			VolumeNamespace:    String("test"),
			NetworkNamespace:   String("test"),
			APIPrefix:          String(defaultAPIPrefix),
			ProxyNetwork:       String(defaultProxyNetwork),
			ProxyAddress:       String("dev.auditdb.io"),
			ProjectName:        String(defaultProjectName),
			Features:           []string{"test_server"},
		},
		"preprod": {
			OpenDatabase:       Bool(false),
			WithProxy:          Bool(true),
			ContainerNamespace: String("preprod"),
			VolumeNamespace:    String("preprod"),
			NetworkNamespace:   String("preprod"),
			APIPrefix:          String(defaultAPIPrefix),
			ProxyNetwork:       String(defaultProxyNetwork),
			ProxyAddress:       String("preprod.auditdb.io"),
			ProjectName:        String(defaultProjectName),
		},
		"prod": {
			OpenDatabase:       Bool(false),
			WithProxy:          Bool(true),
			ContainerNamespace: String("prod"),
			VolumeNamespace:    String("prod"),
			NetworkNamespace:   String("prod"),
			APIPrefix:          String(defaultAPIPrefix),
			ProxyNetwork:       String(defaultProxyNetwork),
			ProxyAddress:       String("auditdb.io"),
			ProjectName:        String(defaultProjectName),
		},
	}
}
