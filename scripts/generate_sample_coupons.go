package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSampleCoupons writes a sample gzipped JSON-lines coupon seed file
// for the coupon-seed command. One coupon definition per line.
func main() {
	dataDir := "data"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	lines := []string{
		`{"code":"CHAI10","kind":"PERCENT","value":"10","maxDiscount":"100"}`,
		`{"code":"WELCOME50","kind":"FLAT","value":"50","minSubtotal":"500"}`,
		`{"code":"FREESHIP","kind":"FREE_DELIVERY"}`,
		`{"code":"DIWALI25","kind":"PERCENT","value":"25","maxDiscount":"200","validFrom":"2026-10-15T00:00:00Z","validUntil":"2026-11-15T23:59:59Z"}`,
		`{"code":"FIRST100","kind":"FLAT","value":"100","minSubtotal":"300","maxRedemptions":1000}`,
	}

	filePath := filepath.Join(dataDir, "coupons.jsonl.gz")
	if err := createSeedFile(filePath, lines); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d coupons\n", filePath, len(lines))
}

// createSeedFile writes the given lines to a gzipped file.
func createSeedFile(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	defer gz.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(gz, line); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	return nil
}
