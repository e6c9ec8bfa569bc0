package web

import (
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johnadams78/capstoneproject/internal/catalog"
	"github.com/johnadams78/capstoneproject/internal/inquiry"
	"github.com/johnadams78/capstoneproject/internal/notify"
	"gorm.io/gorm"
)

// sortOption pairs a sort key with its label in the sort dropdown.
type sortOption struct {
	Key   string
	Label string
}

// sortOptions defines the dropdown in display order.
var sortOptions = []sortOption{
	{"price_desc", "Price: High to Low"},
	{"price_asc", "Price: Low to High"},
	{"hp_desc", "Horsepower"},
	{"name_asc", "Name: A to Z"},
	{"year_desc", "Year: Newest First"},
	{"mileage_asc", "Mileage: Lowest First"},
}

// registerRoutes sets up all showroom routes on the Gin router.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	// Embedded static assets (served from assets/ subdir of the embed.FS).
	staticFS, _ := fs.Sub(assetsFS, "assets")
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", handleShowroom(opts))
	router.GET("/api/inventory", handleInventory(opts.DB))
	router.POST("/inquiries", handleInquiry(opts))
	router.GET("/healthz", handleHealth(opts.DB))
}

func handleShowroom(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalog.ParseCriteria(c.Request.URL.Query())
		result, err := catalog.Browse(opts.DB, criteria)
		if err != nil {
			log.Printf("web: browse failed: %v", err)
			c.HTML(http.StatusServiceUnavailable, "unavailable.html", gin.H{
				"Dealer": opts.Dealer,
			})
			return
		}

		c.HTML(http.StatusOK, "showroom.html", gin.H{
			"Dealer":      opts.Dealer,
			"Vehicles":    result.Vehicles,
			"Facets":      result.Facets,
			"Total":       result.Total,
			"Shown":       len(result.Vehicles),
			"Criteria":    criteria,
			"SortOptions": sortOptions,
			"Submitted":   c.Query("submitted") == "1",
		})
	}
}

func handleInventory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalog.ParseCriteria(c.Request.URL.Query())
		result, err := catalog.Browse(db, criteria)
		if err != nil {
			log.Printf("web: browse failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"vehicles": result.Vehicles,
			"facets": gin.H{
				"makes":      result.Facets.Makes,
				"types":      result.Facets.BodyTypes,
				"categories": result.Facets.Categories,
			},
			"total": result.Total,
			"shown": len(result.Vehicles),
		})
	}
}

func handleInquiry(opts StartOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := inquiry.Submission{
			VehicleRef: c.PostForm("car_id"),
			Name:       c.PostForm("name"),
			Email:      c.PostForm("email"),
			Phone:      c.PostForm("phone"),
			Message:    c.PostForm("message"),
		}

		inq, err := inquiry.Submit(opts.DB, sub)
		if err != nil {
			if inquiry.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("web: inquiry submit failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not save your inquiry, please try again"})
			return
		}

		// Notification delivery must never affect the customer's request.
		if opts.Notifier != nil {
			ev := notify.NewInquiryEvent(inq, opts.Dealer.Name)
			if err := opts.Notifier.Send(c.Request.Context(), ev); err != nil {
				log.Printf("web: inquiry notification failed: %v", err)
			}
		}

		c.Redirect(http.StatusSeeOther, "/?submitted=1")
	}
}

func handleHealth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
