package generator

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Source is an authoritative pollution data publisher consulted for the
// parameter ranges behind the generator formulas.
type Source struct {
	Name string
	URL  string
}

// Sources lists the reference publishers per pollution category.
var Sources = []Source{
	{Name: "CPCB Water Quality", URL: "https://cpcb.nic.in/water-quality/"},
	{Name: "ICAR", URL: "https://icar.gov.in/"},
	{Name: "CPCB Plastic Waste Management", URL: "https://cpcb.nic.in/plastic-waste-management/"},
}

// ProbeSources checks reachability of the reference publishers and logs the
// outcome. Results are informational only and never affect generated data.
func ProbeSources(ctx context.Context) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for _, src := range Sources {
		probeSource(ctx, client, src)
	}
}

func probeSource(ctx context.Context, client *http.Client, src Source) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		log.Printf("generator: failed to create request for %s: %v", src.Name, err)
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("generator: could not reach %s: %v", src.Name, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("generator: %s responded with HTTP %d", src.Name, resp.StatusCode)
		return
	}

	log.Printf("generator: successfully connected to %s", src.Name)
}
