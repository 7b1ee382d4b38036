package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// decodeBody parses the raw body as a JSON object whatever the Content-Type
// says. null, arrays and scalars are rejected.
func decodeBody(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return fmt.Errorf("empty request body")
	}
	if body[0] != '{' {
		return fmt.Errorf("request body is not a JSON object")
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
