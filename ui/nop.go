package ui

// NopBackend discards every call and reports every scope as visible. It
// backs catalogue tooling and can stand in for the real widget API when
// rendering is disabled.
type NopBackend struct{}

var _ Backend = NopBackend{}

func (NopBackend) BeginWindow(string, *bool, int64) bool { return true }
func (NopBackend) EndWindow()                            {}
func (NopBackend) BeginChild(string, [2]float64, int64, int64) bool {
	return true
}
func (NopBackend) BeginChildID(int64, [2]float64, int64, int64) bool {
	return true
}
func (NopBackend) EndChild()                                {}
func (NopBackend) SetNextWindowPos([2]float64, int64)       {}
func (NopBackend) SetNextWindowSize([2]float64, int64)      {}
func (NopBackend) GetWindowPos() [2]float64                 { return [2]float64{} }
func (NopBackend) GetWindowSize() [2]float64                { return [2]float64{} }
func (NopBackend) IsWindowFocused(int64) bool               { return false }
func (NopBackend) PushStyleVar(int64, float64)              {}
func (NopBackend) PushStyleVarVec2(int64, [2]float64)       {}
func (NopBackend) PopStyleVar(int64)                        {}
func (NopBackend) PushStyleColor(int64, [4]float64)         {}
func (NopBackend) PopStyleColor(int64)                      {}
func (NopBackend) BeginGroup()                              {}
func (NopBackend) EndGroup()                                {}
func (NopBackend) BeginDisabled(bool)                       {}
func (NopBackend) EndDisabled()                             {}
func (NopBackend) Separator()                               {}
func (NopBackend) SameLine(float64, float64)                {}
func (NopBackend) Dummy([2]float64)                         {}
func (NopBackend) Text(string)                              {}
func (NopBackend) TextColored([4]float64, string)           {}
func (NopBackend) Button(string, [2]float64) bool           { return false }
func (NopBackend) SmallButton(string) bool                  { return false }
func (NopBackend) ArrowButton(string, int64) bool           { return false }
func (NopBackend) Checkbox(string, *bool) bool              { return false }
func (NopBackend) RadioButton(string, bool) bool            { return false }
func (NopBackend) SliderFloat(string, *float64, float64, float64) bool {
	return false
}
func (NopBackend) SliderInt(string, *int64, int64, int64) bool {
	return false
}
func (NopBackend) InputInt(string, *int64, int64, int64) bool {
	return false
}
func (NopBackend) ProgressBar(float64, [2]float64, string) {}
func (NopBackend) ImageWidget(any, [2]float64, [4]float64, [4]float64) {
}
func (NopBackend) BeginCombo(string, string, int64) bool { return true }
func (NopBackend) EndCombo()                             {}
func (NopBackend) BeginListBox(string, [2]float64) bool  { return true }
func (NopBackend) EndListBox()                           {}
func (NopBackend) TreeNode(string) bool                  { return true }
func (NopBackend) TreeNodeID(string, string) bool        { return true }
func (NopBackend) TreePush(string)                       {}
func (NopBackend) TreePop()                              {}
func (NopBackend) BeginMenuBar() bool                    { return true }
func (NopBackend) EndMenuBar()                           {}
func (NopBackend) BeginMainMenuBar() bool                { return true }
func (NopBackend) EndMainMenuBar()                       {}
func (NopBackend) BeginMenu(string, bool) bool           { return true }
func (NopBackend) EndMenu()                              {}
func (NopBackend) MenuItem(string, string, *bool, bool) bool {
	return false
}
func (NopBackend) BeginTooltip()                      {}
func (NopBackend) EndTooltip()                        {}
func (NopBackend) BeginPopup(string, int64) bool      { return true }
func (NopBackend) BeginPopupModal(string, *bool, int64) bool {
	return true
}
func (NopBackend) EndPopup()                          {}
func (NopBackend) OpenPopup(string, int64)            {}
func (NopBackend) BeginTable(string, int64, int64, [2]float64) bool {
	return true
}
func (NopBackend) EndTable()                          {}
func (NopBackend) TableNextRow()                      {}
func (NopBackend) TableNextColumn() bool              { return false }
func (NopBackend) BeginTabBar(string, int64) bool     { return true }
func (NopBackend) EndTabBar()                         {}
func (NopBackend) BeginTabItem(string, *bool, int64) bool {
	return true
}
func (NopBackend) EndTabItem()                        {}
func (NopBackend) BeginDragDropSource(int64) bool     { return false }
func (NopBackend) EndDragDropSource()                 {}
func (NopBackend) BeginDragDropTarget() bool          { return false }
func (NopBackend) EndDragDropTarget()                 {}
func (NopBackend) IsItemHovered(int64) bool           { return false }
func (NopBackend) GetMousePos() [2]float64            { return [2]float64{} }
func (NopBackend) CalcTextSize(string, bool, float64) [2]float64 {
	return [2]float64{}
}
func (NopBackend) GetStyleColor(int64) [4]float64 { return [4]float64{} }
func (NopBackend) GetVersion() string             { return "nop" }
