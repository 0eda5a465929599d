package verify

import (
	"github.com/auditdb/stackgen/internal/catalog"
	"github.com/auditdb/stackgen/internal/filesystems"
)

// BuildContexts returns the build contexts of services that hold no
// Dockerfile in filesystem. Services built from the workspace root use the
// generated Dockerfile and are skipped.
func BuildContexts(filesystem filesystems.FileSystem, services []catalog.ServiceDescriptor) []string {
	var missing []string
	for _, svc := range services {
		if svc.Folder == "" {
			continue
		}
		if !filesystems.Exists(filesystem, filesystem.Join(svc.Folder, "Dockerfile")) {
			missing = append(missing, svc.BuildContext())
		}
	}
	return missing
}
