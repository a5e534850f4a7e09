package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/clipmd"
	"github.com/fwojciec/clipmd/fs"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	if c.JSON {
		return c.runJSON(deps)
	}

	progress := func(p clipmd.ClipProgress) {
		if p.Error != nil {
			printError(deps.Stderr, "%s: %s", p.Source, clipmd.ErrorMessage(p.Error))
		}
	}

	pages, err := deps.Clipper.ClipAll(deps.Ctx, c.Sources, progress)
	if err != nil {
		printError(deps.Stderr, "%s", clipmd.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		printError(deps.Stderr, "no content extracted")
		return clipmd.Errorf(clipmd.ENOTFOUND, "no content extracted")
	}

	markdown := clipmd.FormatPages(pages)

	if c.Output != "" {
		if err := fs.WriteFile(c.Output, markdown); err != nil {
			printError(deps.Stderr, "writing %s: %s", c.Output, clipmd.ErrorMessage(err))
			return err
		}
		printSuccess(deps.Stderr, "Wrote Markdown to %s", c.Output)
	}

	if c.Print {
		fmt.Fprintln(deps.Stdout, markdown)
	} else {
		if err := deps.Clipboard.WriteText(markdown); err != nil {
			printError(deps.Stderr, "%s", clipmd.ErrorMessage(err))
			return err
		}
		printSuccess(deps.Stderr, "Copied Markdown to clipboard")
	}

	if c.Save {
		for _, page := range pages {
			clip := &clipmd.Clip{Source: page.Source, Title: page.Title, Content: page.Content}
			if err := deps.Clips.CreateClip(deps.Ctx, clip); err != nil {
				printError(deps.Stderr, "saving %s: %s", page.Source, clipmd.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "Saved clip %s\n", clip.ID)
		}
	}

	return nil
}

// runJSON prints the extraction Response of a single source.
func (c *CopyCmd) runJSON(deps *Dependencies) error {
	if len(c.Sources) != 1 {
		printError(deps.Stderr, "--json takes exactly one source")
		return clipmd.Errorf(clipmd.EINVALID, "--json takes exactly one source")
	}

	var failure error
	pages, err := deps.Clipper.ClipAll(deps.Ctx, c.Sources, func(p clipmd.ClipProgress) {
		failure = p.Error
	})
	if err != nil {
		return err
	}

	resp := clipmd.Response{Success: true}
	if len(pages) == 1 {
		resp.Content = pages[0].Content
	} else {
		resp = clipmd.Response{Success: false, Error: clipmd.ErrorMessage(failure)}
	}

	if err := json.NewEncoder(deps.Stdout).Encode(resp); err != nil {
		return err
	}
	if !resp.Success {
		return failure
	}
	return nil
}
