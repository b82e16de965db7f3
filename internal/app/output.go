package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/five82/apod98/internal/apod"
)

// writeRecord prints a record as plain text.
func writeRecord(w io.Writer, rec apod.Record) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", rec.Title)
	fmt.Fprintf(&b, "Date:      %s\n", rec.Date)
	if c := strings.Join(strings.Fields(rec.Copyright), " "); c != "" {
		fmt.Fprintf(&b, "Copyright: %s\n", c)
	}

	if rec.IsImage() {
		fmt.Fprintf(&b, "Image:     %s\n", rec.MediaURL)
		if rec.HDURL != "" && rec.HDURL != rec.MediaURL {
			fmt.Fprintf(&b, "HD:        %s\n", rec.HDURL)
		}
	} else {
		fmt.Fprintf(&b, "Video:     %s\n", rec.MediaURL)
		if rec.ThumbnailURL != "" {
			fmt.Fprintf(&b, "Thumbnail: %s\n", rec.ThumbnailURL)
		}
	}

	if rec.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", rec.Explanation)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
