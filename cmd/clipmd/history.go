package main

import (
	"fmt"

	"github.com/fwojciec/clipmd"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	filter := clipmd.ClipFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	clips, err := deps.Clips.FindClips(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipmd.ErrorMessage(err))
		return err
	}

	if len(clips) == 0 {
		fmt.Fprintln(deps.Stdout, "No clips saved. Use 'clipmd copy --save' to record one.")
		return nil
	}

	for _, clip := range clips {
		label := clip.Title
		if label == "" {
			label = clip.Source
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", clip.ID, clip.CreatedAt.Local().Format("2006-01-02 15:04"), label)
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	clip, err := deps.Clips.FindClipByID(deps.Ctx, c.ID)
	if clipmd.ErrorCode(err) == clipmd.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: clip %q not found. Use 'clipmd history list' to see saved clips.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipmd.ErrorMessage(err))
		return err
	}

	if !c.Copy {
		fmt.Fprintln(deps.Stdout, clip.Content)
		return nil
	}

	if err := deps.Clipboard.WriteText(clip.Content); err != nil {
		printError(deps.Stderr, "%s", clipmd.ErrorMessage(err))
		return err
	}
	printSuccess(deps.Stderr, "Copied Markdown to clipboard")
	return nil
}

// Run executes the history delete command.
func (c *HistoryDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return clipmd.Errorf(clipmd.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Clips.DeleteClip(deps.Ctx, c.ID); clipmd.ErrorCode(err) == clipmd.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: clip %q not found\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipmd.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted clip %s\n", c.ID)
	return nil
}
