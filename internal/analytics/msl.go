package analytics

import "github.com/rogerio-castellano/inventory-insights/internal/models"

// ProjectMSLTrends maps every record to its closing stock against the MSL target.
// Output order is input order; duplicates are kept.
func ProjectMSLTrends(records []models.RawRecord) []models.MSLTrendPoint {
	points := make([]models.MSLTrendPoint, len(records))
	for i, r := range records {
		points[i] = models.MSLTrendPoint{
			ItemID: r.ItemID,
			Date:   r.Date,
			Stock:  r.ClosingStock,
			MSL:    r.MSL,
		}
	}
	return points
}
