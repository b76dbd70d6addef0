// Package ladder provides a job-title resolution engine that normalizes
// free-text titles, extracts seniority, and maps titles to a canonical role
// taxonomy.
//
// Quick start:
//
//	l, err := ladder.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//
//	res := l.ParseTitle("SR. SOFTWARE ENGINEER II")
//	fmt.Println(res.NormalizedTitle, res.Seniority) // Sr. Software Engineer senior
//
// The Ladder instance is safe for concurrent use. Create once, reuse across
// requests. ReloadTaxonomy swaps the role set atomically without pausing
// in-flight parses. See the README for full documentation.
package ladder
