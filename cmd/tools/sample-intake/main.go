// cmd/tools/sample-intake/main.go
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"groupscholar-intake/pkg/fields"
)

// Sample rows exercising the messy shapes the normalizer handles: header
// aliases arrive via fields.Registry, values carry the usual noise.
var sampleRows = [][]string{
	{"GS-1001", "Ada Moreno", "ada.moreno@university.edu", "(312) 555-0101", "STEM Scholars", "Public", "3.92", "2026", "40k-70k", "yes", "US Citizen", "School Counselor", "2026-01-20", "09:15", ""},
	{"GS-1002", "Ben Osei", "ben.osei@gmail.com", "+44 20 7946 0102", "stem scholars", "Charter", "2.1", "2025", "under 40k", "Y", "Permanent Resident", "Instagram", "2026/01/18", "13:40", "GPA review requested"},
	{"GS-1003", "Carla Diaz", "carla.diaz@outlook", "555-0103", "Arts Catalyst", "", "5.8", "2026", "", "no", "", "Website", "01/15/2026", "", "Missing essay and missing transcript"},
	{"GS-1004", "", "dev.kumar@nonprofit.org", "+91 98765 43210", "health futures", "Private", "", "2031", "70k-100k", "true", "international student", "friend", "2026-02-30", "22:05", "Verify income before award"},
	{"GS-1005", "Elena Petrova", "ada.moreno@university.edu", "3125550101", "Health Futures", "Homeschool", "3.1", "2027", "over 100k", "1", "Visa Holder", "Teacher", "2025-11-02", "17:30", "All docs complete"},
	{"", "Farid Haddad", "", "bad-phone", "", "public school", "abc", "", "40-70k", "nope", "Dual Citizen", "", "", "", "Follow up about fee waiver"},
}

func main() {
	outPath := flag.String("out", "testdata/sample_intake.csv", "Path to write the sample intake CSV")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output directory: %v\n", err)
		os.Exit(1)
	}

	handle, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output file: %v\n", err)
		os.Exit(1)
	}
	defer handle.Close()

	writer := csv.NewWriter(handle)
	if err := writer.Write(fields.Names()); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}
	for _, row := range sampleRows {
		if err := writer.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d sample applications to %s\n", len(sampleRows), *outPath)
}
