package main

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/kholcomb/profile-site/internal/profile"
)

func main() {
	initDB()
	initAdminToken()
	initVisitorTracking()

	r := setupRouter(newFetcher())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// newFetcher picks where the profile documents come from. By default the
// server and the scheduled job share a working tree, so the cache files
// are read locally; PROFILE_DATA_URL points at another origin instead.
func newFetcher() profile.Fetcher {
	if base := os.Getenv("PROFILE_DATA_URL"); base != "" {
		return profile.HTTPFetcher{
			BaseURL: base,
			Client:  &http.Client{Timeout: 10 * time.Second},
		}
	}
	return profile.DirFetcher{Dir: "."}
}

func setupRouter(fetcher profile.Fetcher) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")
	r.Static("/cache", "./cache")

	r.Use(visitorTrackingMiddleware())

	loader := profile.NewLoader(fetcher)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		resume, stats, err := loader.Load(c.Request.Context())

		var page profile.Page
		if err != nil {
			// Either document failing drops the whole enriched page
			// down to the static fallback bio.
			log.Printf("Error loading profile data: %v", err)
			page = profile.FallbackPage()
		} else {
			page = profile.BuildPage(resume, stats)
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"title":   SiteTitle,
			"tagline": SiteTagline,
			"page":    page,
		})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		name := c.PostForm("fullName")
		email := c.PostForm("email")
		message := c.PostForm("message")

		err := sendContactEmail(name, email, message)
		if err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})

	setupAdminRoutes(r)

	return r
}

func sendContactEmail(name, email, message string) error {
	// Email configuration - use environment variables for security
	smtpHost := os.Getenv("SMTP_HOST") // e.g., "smtp.gmail.com"
	smtpPort := os.Getenv("SMTP_PORT") // e.g., "587"
	smtpUser := os.Getenv("SMTP_USER") // your email
	smtpPass := os.Getenv("SMTP_PASS") // your app password
	toEmail := os.Getenv("TO_EMAIL")   // where you want to receive emails

	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	if smtpUser == "" || smtpPass == "" || toEmail == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Profile Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your profile page:

Name: %s
Email: %s
Message:
%s

---
Sent from your profile contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg)
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully from %s (%s)", name, email)
	return nil
}
