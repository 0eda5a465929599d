package catalog

import (
	"github.com/auditdb/stackgen/internal/config"
)

// Network and volume names shared by several services.
const (
	NetworkDatabase = "database"
	NetworkReport   = "report"

	VolumeBinaries = "binaries"
	VolumeFiles    = "files"
	VolumeRepo     = "repo"
	VolumeDatabase = "database"
	VolumeBackup   = "backup"

	ServiceBinaries = "binaries"
	ServiceDatabase = "database"

	DatabasePort = 27017
)

// Volumes lists the named volumes declared at the top of the compose file.
func Volumes() []string {
	return []string{VolumeBackup, VolumeDatabase, VolumeFiles, VolumeBinaries, VolumeRepo}
}

// Networks lists the namespaced networks declared at the top of the compose
// file. The proxy network is declared separately.
func Networks() []string {
	return []string{NetworkReport, NetworkDatabase}
}

var binariesMount = VolumeMount{Name: VolumeBinaries, Path: "/data/binaries"}

type apiService struct {
	name   string
	port   int
	routes []string
}

// Services returns the stack in render order. Each call builds fresh
// descriptors; nothing is shared between calls.
func Services(cfg config.Config) []ServiceDescriptor {
	serviceMode := ExposePorts
	if cfg.WithProxy {
		serviceMode = ExposeInternal
	}
	databaseMode := ExposeInternal
	if cfg.OpenDatabase {
		databaseMode = ExposePorts
	}

	proxy := cfg.ProxyNetwork
	api := func(s apiService) ServiceDescriptor {
		return ServiceDescriptor{
			Name:      s.name,
			Folder:    s.name,
			Port:      &PortBinding{Number: s.port, Mode: serviceMode},
			Routes:    &RouteGroup{Prefix: cfg.APIPrefix, Routes: s.routes},
			DependsOn: []string{ServiceBinaries},
			Volumes:   []VolumeMount{binariesMount},
			Networks:  []string{proxy, NetworkDatabase},
		}
	}

	files := api(apiService{"files", 3005, []string{"file", "notused1"}})
	files.Volumes = append(files.Volumes, VolumeMount{Name: VolumeFiles, Path: "/auditdb-files"})

	notification := api(apiService{"notification", 3008, []string{"send_notification", "read_notification", "unread_notifications"}})
	notification.Volumes = nil

	renderer := api(apiService{"renderer", 3015, []string{"generate-report", "notused1"}})
	renderer.DependsOn = nil
	renderer.Volumes = nil
	renderer.Networks = []string{proxy, NetworkReport}

	report := api(apiService{"report", 3011, []string{"report", "notused2"}})
	report.DependsOn = []string{ServiceBinaries, "renderer"}
	report.Networks = []string{proxy, NetworkReport}

	cloc := api(apiService{"cloc", 3013, []string{"cloc", "notused1"}})
	cloc.Volumes = append(cloc.Volumes, VolumeMount{Name: VolumeRepo, Path: "/repositories"})

	return []ServiceDescriptor{
		{
			Name:    ServiceBinaries,
			Volumes: []VolumeMount{binariesMount},
		},
		api(apiService{"users", 3001, []string{"user", "auth", "my_user", "waiting_list"}}),
		api(apiService{"customers", 3002, []string{"customer", "my_customer", "project", "my_project"}}),
		api(apiService{"audits", 3003, []string{"audit", "my_audit", "request", "my_request", "public_audits", "no_customer_audit"}}),
		api(apiService{"auditors", 3004, []string{"auditor", "my_auditor", "badge"}}),
		files,
		api(apiService{"search", 3006, []string{"search", "notused1"}}),
		api(apiService{"mail", 3007, []string{"mail", "feedback", "code"}}),
		notification,
		api(apiService{"telemetry", 3009, []string{"telemetry", "notused1"}}),
		api(apiService{"chat", 3012, []string{"chat", "notused1"}}),
		renderer,
		report,
		cloc,
		api(apiService{"event", 3010, []string{"notification", "event"}}),
		{
			Name:   ServiceDatabase,
			Folder: "mongo",
			Port:   &PortBinding{Number: DatabasePort, Mode: databaseMode},
			Volumes: []VolumeMount{
				{Name: VolumeDatabase, Path: "/data/db"},
				{Name: VolumeBackup, Path: "/mongo_backup"},
			},
			Networks: []string{proxy, NetworkDatabase},
		},
	}
}

// Find returns the named descriptor from services.
func Find(services []ServiceDescriptor, name string) (ServiceDescriptor, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return ServiceDescriptor{}, false
}
