// Package storyboard exports the scene list of a run as a docx document,
// one numbered entry per illustrated sentence with the prompt that was
// sent to the image model.
package storyboard

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

// Scene is one storyboard entry. Skipped marks sentences that produced
// no illustration.
type Scene struct {
	Index    int
	Sentence string
	Prompt   string
	Skipped  bool
}

// Write renders the storyboard to a docx file at outputPath.
func Write(title string, scenes []Scene, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, scene := range scenes {
		heading := fmt.Sprintf("Scene %d", scene.Index+1)
		if scene.Skipped {
			heading += " (no illustration)"
		}
		addRun(doc.AddParagraph(""), heading, true, 14)

		addRun(doc.AddParagraph(""), scene.Sentence, false, fontSize)

		if scene.Prompt != "" {
			p := doc.AddParagraph("")
			p.AddText("Prompt: "+scene.Prompt).Font(fontName).Size(fontSize).Color("555555")
		}

		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
