package citizens

import (
	"io"

	"github.com/joshuapare/citizenkit/pkg/roster"
)

// Export writes everyone in c to w in ID order.
func Export(w io.Writer, c Citizens, format roster.Format) error {
	return roster.Write(w, c.AllByID(), format)
}
