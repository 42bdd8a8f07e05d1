package session

import (
	"bytes"
	"errors"
	"strings"

	"github.com/kindermann-r/hiking-navigator/internal/proximity"
	"github.com/kindermann-r/hiking-navigator/internal/track"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		sess := svc.Create()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":         sess.ID,
			"created_at": sess.CreatedAt,
		})
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summary)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Params("id")); err != nil {
			return httpError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/track", func(c *fiber.Ctx) error {
		trk, stats, err := svc.LoadTrack(c.Params("id"), c.Query("name"), c.Body(), uploadFormat(c))
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"track": summarizeTrack(trk),
			"stats": stats,
		})
	})

	r.Get("/:id/track", func(c *fiber.Ctx) error {
		trk, stats, err := svc.TrackWithStats(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(fiber.Map{"track": trk, "stats": stats})
	})

	r.Get("/:id/track/geojson", func(c *fiber.Ctx) error {
		trk, stats, err := svc.TrackWithStats(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		raw, err := track.GeoJSON(trk, stats)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/geo+json")
		return c.Send(raw)
	})

	r.Get("/:id/track/kml", func(c *fiber.Ctx) error {
		trk, stats, err := svc.TrackWithStats(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		var buf bytes.Buffer
		if err := track.WriteKML(&buf, trk, stats); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/vnd.google-earth.kml+xml")
		return c.Send(buf.Bytes())
	})

	r.Get("/:id/profile", func(c *fiber.Ctx) error {
		trk, stats, err := svc.TrackWithStats(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		var buf bytes.Buffer
		if err := renderProfile(&buf, trk, stats); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	r.Post("/:id/fixes", func(c *fiber.Ctx) error {
		var fix proximity.Fix
		if err := c.BodyParser(&fix); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		status, err := svc.ReportFix(c.Params("id"), fix)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(status)
	})

	r.Post("/:id/gps-errors", func(c *fiber.Ctx) error {
		var body struct {
			Code string `json:"code"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		status, err := svc.ReportGpsError(c.Params("id"), body.Code)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(status)
	})

	r.Get("/:id/proximity", func(c *fiber.Ctx) error {
		status, err := svc.Proximity(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(status)
	})
}

// uploadFormat picks the track format from the format query parameter or,
// failing that, the Content-Type. Formats are never sniffed from the body.
func uploadFormat(c *fiber.Ctx) string {
	if f := strings.ToLower(c.Query("format")); f != "" {
		return f
	}
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	if strings.Contains(ct, "gpx") || strings.Contains(ct, "xml") {
		return FormatGPX
	}
	return FormatJSON
}

func httpError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrNoTrackLoaded):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, track.ErrMalformedDocument):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, track.ErrNoTrackData):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
