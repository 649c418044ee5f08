// Package ui binds an immediate-mode widget API to the script runtime.
//
// The widget API itself is an external collaborator consumed through the
// Backend interface; this package owns the binding catalogue: which native
// functions exist, how their arguments marshal, and which begin/end pairs
// participate in the end-stack discipline.
package ui

// Backend is the native widget/drawing surface. Pointer parameters are
// output references: a nil pointer means the caller did not request
// write-back and the implementation must skip the write. Begin* methods
// returning bool report whether the scope produced visible output; their
// matching End* must follow the API's own LIFO pairing rules, which the
// binding layer enforces on the script's behalf.
type Backend interface {
	// Windows and child regions.
	BeginWindow(name string, open *bool, flags int64) bool
	EndWindow()
	BeginChild(id string, size [2]float64, childFlags, windowFlags int64) bool
	BeginChildID(id int64, size [2]float64, childFlags, windowFlags int64) bool
	EndChild()
	SetNextWindowPos(pos [2]float64, cond int64)
	SetNextWindowSize(size [2]float64, cond int64)
	GetWindowPos() [2]float64
	GetWindowSize() [2]float64
	IsWindowFocused(flags int64) bool

	// Style and layout stacks.
	PushStyleVar(idx int64, val float64)
	PushStyleVarVec2(idx int64, val [2]float64)
	PopStyleVar(count int64)
	PushStyleColor(idx int64, color [4]float64)
	PopStyleColor(count int64)
	BeginGroup()
	EndGroup()
	BeginDisabled(disabled bool)
	EndDisabled()
	Separator()
	SameLine(offsetX, spacing float64)
	Dummy(size [2]float64)

	// Text and basic widgets.
	Text(text string)
	TextColored(color [4]float64, text string)
	Button(label string, size [2]float64) bool
	SmallButton(label string) bool
	ArrowButton(id string, dir int64) bool
	Checkbox(label string, v *bool) bool
	RadioButton(label string, active bool) bool
	SliderFloat(label string, v *float64, min, max float64) bool
	SliderInt(label string, v *int64, min, max int64) bool
	InputInt(label string, v *int64, step, stepFast int64) bool
	ProgressBar(fraction float64, size [2]float64, overlay string)
	ImageWidget(texture any, size [2]float64, tintCol, borderCol [4]float64)

	// Selection containers.
	BeginCombo(label, preview string, flags int64) bool
	EndCombo()
	BeginListBox(label string, size [2]float64) bool
	EndListBox()
	TreeNode(label string) bool
	TreeNodeID(id, label string) bool
	TreePush(id string)
	TreePop()

	// Menus, tooltips, popups.
	BeginMenuBar() bool
	EndMenuBar()
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string, enabled bool) bool
	EndMenu()
	MenuItem(label, shortcut string, selected *bool, enabled bool) bool
	BeginTooltip()
	EndTooltip()
	BeginPopup(id string, flags int64) bool
	BeginPopupModal(name string, open *bool, flags int64) bool
	EndPopup()
	OpenPopup(id string, flags int64)

	// Tables and tab bars.
	BeginTable(id string, columns int64, flags int64, outerSize [2]float64) bool
	EndTable()
	TableNextRow()
	TableNextColumn() bool
	BeginTabBar(id string, flags int64) bool
	EndTabBar()
	BeginTabItem(label string, open *bool, flags int64) bool
	EndTabItem()

	// Drag and drop.
	BeginDragDropSource(flags int64) bool
	EndDragDropSource()
	BeginDragDropTarget() bool
	EndDragDropTarget()

	// Queries.
	IsItemHovered(flags int64) bool
	GetMousePos() [2]float64
	CalcTextSize(text string, hideAfterHash bool, wrapWidth float64) [2]float64
	GetStyleColor(idx int64) [4]float64
	GetVersion() string
}
