package pagination

import "strconv"

// MaxPageButtons is the widest run of consecutive page buttons in the strip.
const MaxPageButtons = 5

// ControlKind identifies an element of the pagination strip.
type ControlKind int

const (
	// ControlPrevious moves one page back.
	ControlPrevious ControlKind = iota
	// ControlPage jumps to a specific page.
	ControlPage
	// ControlEllipsis is a non-interactive gap marker.
	ControlEllipsis
	// ControlNext moves one page forward.
	ControlNext
)

// Strip labels.
const (
	LabelPrevious = "Previous"
	LabelNext     = "Next"
	LabelEllipsis = "..."
)

// String returns the kind name used in JSON output and logs.
func (k ControlKind) String() string {
	switch k {
	case ControlPrevious:
		return "previous"
	case ControlPage:
		return "page"
	case ControlEllipsis:
		return "ellipsis"
	case ControlNext:
		return "next"
	default:
		return "unknown"
	}
}

// MarshalText lets ControlKind serialize by name.
func (k ControlKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Control is one element of the pagination strip. Page is the page a click
// navigates to; it is zero for ellipses.
type Control struct {
	Kind     ControlKind `json:"kind"`
	Page     int         `json:"page,omitempty"`
	Label    string      `json:"label"`
	Active   bool        `json:"active,omitempty"`
	Disabled bool        `json:"disabled,omitempty"`
}

// Clickable reports whether activating the control should navigate.
func (c Control) Clickable() bool {
	return c.Kind != ControlEllipsis && !c.Disabled && !c.Active
}

// Window returns the first and last page of the centred run of page buttons.
//
//nolint:nonamedreturns // Named returns document the pair.
func Window(current, total int) (first, last int) {
	if total < 1 {
		return 1, 1
	}
	current = ClampPage(current, total)

	first = max(1, current-MaxPageButtons/2)
	last = min(total, first+MaxPageButtons-1)
	if last-first < MaxPageButtons-1 {
		first = max(1, last-MaxPageButtons+1)
	}
	return first, last
}

// Controls lays out the pagination strip for current of total pages.
// It returns nil when there is nothing to navigate.
func Controls(current, total int) []Control {
	if total <= 1 {
		return nil
	}
	current = ClampPage(current, total)
	first, last := Window(current, total)

	controls := make([]Control, 0, MaxPageButtons+4) //nolint:mnd // Prev, Next, two edge pages.
	controls = append(controls, Control{
		Kind:     ControlPrevious,
		Page:     max(1, current-1),
		Label:    LabelPrevious,
		Disabled: current == 1,
	})

	if first > 1 {
		controls = append(controls, pageControl(1, current))
		if first > 2 { //nolint:mnd // Gap of more than one page.
			controls = append(controls, Control{Kind: ControlEllipsis, Label: LabelEllipsis, Disabled: true})
		}
	}

	for p := first; p <= last; p++ {
		controls = append(controls, pageControl(p, current))
	}

	if last < total {
		if last < total-1 {
			controls = append(controls, Control{Kind: ControlEllipsis, Label: LabelEllipsis, Disabled: true})
		}
		controls = append(controls, pageControl(total, current))
	}

	controls = append(controls, Control{
		Kind:     ControlNext,
		Page:     min(total, current+1),
		Label:    LabelNext,
		Disabled: current == total,
	})

	return controls
}

func pageControl(page, current int) Control {
	return Control{
		Kind:   ControlPage,
		Page:   page,
		Label:  strconv.Itoa(page),
		Active: page == current,
	}
}
