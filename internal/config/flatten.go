package config

import "fmt"

// Flatten returns every body in depth-first configuration order with
// Children cleared and ParentID filled in from the nesting. A nested body
// whose explicit ParentID disagrees with its container is reported as an
// issue and keeps the container as its parent.
func (d *Document) Flatten() ([]Body, []string) {
	var (
		out    []Body
		issues []string
	)

	var walk func(bodies []Body, parent string)
	walk = func(bodies []Body, parent string) {
		for _, b := range bodies {
			children := b.Children
			b.Children = nil

			if parent != "" {
				if b.ParentID != "" && b.ParentID != parent {
					issues = append(issues, fmt.Sprintf(
						"body %q is nested under %q but names parent %q", b.ID, parent, b.ParentID))
				}
				b.ParentID = parent
			}

			out = append(out, b)
			walk(children, b.ID)
		}
	}
	walk(d.Bodies, "")

	return out, issues
}
