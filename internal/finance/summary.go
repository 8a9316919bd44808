package finance

import "sort"

// DeliveryFact is one delivery row joined with the display names the
// aggregations group on.
type DeliveryFact struct {
	UserID     uint
	UserName   string
	ClientName string
	Phase      string
	Gross      float64
	Net        float64
}

// GroupSummary is an aggregation bucket. ID is only set for user groupings.
type GroupSummary struct {
	ID            uint    `json:"id,omitempty"`
	Name          string  `json:"name"`
	DeliveryCount int     `json:"deliveryCount"`
	TotalGross    float64 `json:"totalGross"`
	TotalNet      float64 `json:"totalNet"`
}

// SummarizeByUser groups facts by contributing user. Users without a delivery
// in the input do not appear.
func SummarizeByUser(facts []DeliveryFact) []GroupSummary {
	groups := make(map[uint]*GroupSummary)

	for _, f := range facts {
		g, ok := groups[f.UserID]
		if !ok {
			g = &GroupSummary{ID: f.UserID, Name: f.UserName}
			groups[f.UserID] = g
		}
		g.DeliveryCount++
		g.TotalGross += f.Gross
		g.TotalNet += f.Net
	}

	return sorted(groups)
}

// SummarizeByClient groups facts by the client owning the delivery's project.
func SummarizeByClient(facts []DeliveryFact) []GroupSummary {
	groups := make(map[string]*GroupSummary)

	for _, f := range facts {
		g, ok := groups[f.ClientName]
		if !ok {
			g = &GroupSummary{Name: f.ClientName}
			groups[f.ClientName] = g
		}
		g.DeliveryCount++
		g.TotalGross += f.Gross
		g.TotalNet += f.Net
	}

	return sortedByName(groups)
}

// SummarizeByPhase groups facts by delivery role.
func SummarizeByPhase(facts []DeliveryFact) []GroupSummary {
	groups := make(map[string]*GroupSummary)

	for _, f := range facts {
		g, ok := groups[f.Phase]
		if !ok {
			g = &GroupSummary{Name: f.Phase}
			groups[f.Phase] = g
		}
		g.DeliveryCount++
		g.TotalGross += f.Gross
		g.TotalNet += f.Net
	}

	return sortedByName(groups)
}

// Totals sums the gross and net amounts over the given facts. Empty input
// yields zeros.
func Totals(facts []DeliveryFact) (gross, net float64) {
	for _, f := range facts {
		gross += f.Gross
		net += f.Net
	}
	return gross, net
}

func sorted(groups map[uint]*GroupSummary) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sortSummaries(out)
	return out
}

func sortedByName(groups map[string]*GroupSummary) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sortSummaries(out)
	return out
}

// sortSummaries orders by total net descending, breaking ties on name
// ascending so output stays reproducible.
func sortSummaries(out []GroupSummary) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalNet != out[j].TotalNet {
			return out[i].TotalNet > out[j].TotalNet
		}
		return out[i].Name < out[j].Name
	})
}
