// Package citizens is the application-facing entry point to a citizen
// registry.
//
// A Directory wraps a registry.Registry with a read/write lock so it can be
// shared between goroutines, records Prometheus metrics for every operation,
// and logs mutations at Debug level.
//
// Rosters on disk are loaded with Load or LoadReader and written back with
// Export:
//
//	dir, report, err := citizens.Load("people.csv", citizens.LoadOptions{})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("loaded %d people (%d duplicates skipped)\n", report.Added, report.Skipped)
//
//	for _, p := range dir.FindByAge(30, 39) {
//	    fmt.Println(p)
//	}
//
// Queries return freshly allocated slices. The *types.Person values in them
// are the registered instances and must be treated as read-only.
package citizens
