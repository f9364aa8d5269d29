package server

import "github.com/gofiber/fiber/v2"

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Audio to Whiteboard Animation</title>
</head>
<body>
  <h1>Turn Audio into a Whiteboard Animation</h1>
  <p>Upload an audio file and the pipeline will illustrate what was said.</p>
  <form action="/api/v1/animations" method="post" enctype="multipart/form-data">
    <p><input type="file" name="audio" accept=".mp3,.wav,.m4a" required></p>
    <p>
      <label for="style">Illustration style:</label>
      <select name="style" id="style">
        <option value="simple">Simple lines</option>
        <option value="cartoon">Cartoon</option>
        <option value="detailed">More detailed</option>
      </select>
    </p>
    <p><button type="submit">Generate animation</button></p>
  </form>
</body>
</html>
`

func (s *Server) index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}
