package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/illestjason29/videodownloader/internal/download"
	"github.com/illestjason29/videodownloader/internal/platform"
)

// Content types attached to download responses.
const (
	ContentTypeMP4    = "video/mp4"
	ContentTypeBinary = "application/octet-stream"
	ContentTypeMP3    = "audio/mpeg"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleMetadata returns metadata and available formats for a video URL.
func (s *Server) handleMetadata(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.settings.ProbeTimeout)
	defer cancel()

	meta, err := s.downloader.Metadata(ctx, url)
	if err != nil {
		log.Printf("metadata fetch failed for %s: %v", url, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, meta)
}

// handleDownload streams the requested video format as an attachment.
func (s *Server) handleDownload(c *gin.Context) {
	url := c.Query("url")
	formatID := c.Query("format_id")
	if url == "" || formatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url and format_id parameters are required"})
		return
	}

	// The extraction runs to completion even if the client goes away; the
	// deferred cleanup still removes the directory afterwards.
	ctx, cancel := context.WithTimeout(context.Background(), s.settings.DownloadTimeout)
	defer cancel()

	res, err := s.downloader.Download(ctx, url, formatID)
	if err != nil {
		s.fail(c, url, err)
		return
	}
	defer res.Cleanup()

	contentType := ContentTypeBinary
	if strings.EqualFold(res.Ext, "mp4") {
		contentType = ContentTypeMP4
	}
	s.serveFile(c, res, c.Query("filename"), res.Ext, contentType)
}

// handleAudio streams the extracted MP3 as an attachment.
func (s *Server) handleAudio(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.settings.DownloadTimeout)
	defer cancel()

	res, err := s.downloader.Audio(ctx, url, c.Query("format_id"))
	if err != nil {
		s.fail(c, url, err)
		return
	}
	defer res.Cleanup()

	// The attachment is always named .mp3, whatever the source container was.
	s.serveFile(c, res, c.Query("filename"), download.AudioExt, ContentTypeMP3)
}

// serveFile writes the downloaded artifact as an attachment named after the
// caller's hint or the source title. The owning temporary directory is
// removed by the handler's deferred cleanup once the body has been written
// or the connection aborted.
func (s *Server) serveFile(c *gin.Context, res *download.Result, hint, ext, contentType string) {
	base := hint
	if base == "" {
		base = res.Title
	}
	filename := fmt.Sprintf("%s.%s", platform.SanitizeFilename(base), ext)

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.File(res.Path)
}

// fail maps pipeline failures to HTTP statuses: a missing artifact is an
// internal fault, everything the extractor raised is a client error carrying
// the underlying message.
func (s *Server) fail(c *gin.Context, url string, err error) {
	log.Printf("download failed for %s: %v", url, err)
	if errors.Is(err, download.ErrNoOutput) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
