package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

// GenerateRandomSlug builds a unique URL-friendly slug for a medicine name.
func GenerateRandomSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// GenerateBatchCode builds a stock batch code like "IN-240831-X7KQ2M".
func GenerateBatchCode(direction string) string {
	datePrefix := time.Now().Format("060102")
	shortID := strings.ToUpper(shortuuid.New()[:6])

	return fmt.Sprintf("%s-%s-%s", strings.ToUpper(direction), datePrefix, shortID)
}
