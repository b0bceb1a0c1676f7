// Package export renders computed pricing grids into downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/domain"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/pricing"
)

// WriteGridCSV writes the grid as CSV with one row per room and season.
// Channel columns follow the given channel order so the file matches the
// configuration screen.
func WriteGridCSV(w io.Writer, rows []pricing.PricingRow, channels []domain.Channel) error {
	cw := csv.NewWriter(w)

	header := []string{"room", "season", "occupancy", "direct_price"}
	for _, channel := range channels {
		header = append(header,
			channel.Name+" list",
			channel.Name+" net",
			channel.Name+" profitable",
		)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.RoomName,
			row.SeasonName,
			fmt.Sprintf("%d", row.Occupancy),
			fmt.Sprintf("%d", row.DirectPrice),
		}
		for _, channel := range channels {
			calc := row.Channels[channel.ID]
			if calc == nil || !calc.Valid {
				record = append(record, "", "", "")
				continue
			}
			record = append(record,
				fmt.Sprintf("%d", calc.ListPrice),
				fmt.Sprintf("%.2f", calc.EstimatedNet),
				fmt.Sprintf("%t", calc.IsProfitable),
			)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
