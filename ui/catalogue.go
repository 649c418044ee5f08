package ui

import (
	"github.com/hollis/imscript/bind"
	"github.com/hollis/imscript/script"
)

// Slots groups the end-stack slot for each scope class in the catalogue.
type Slots struct {
	Window         bind.Slot
	Child          bind.Slot
	StyleVar       bind.Slot
	StyleColor     bind.Slot
	Group          bind.Slot
	Combo          bind.Slot
	TreeNode       bind.Slot
	ListBox        bind.Slot
	MenuBar        bind.Slot
	MainMenuBar    bind.Slot
	Menu           bind.Slot
	Tooltip        bind.Slot
	Popup          bind.Slot
	Table          bind.Slot
	TabBar         bind.Slot
	TabItem        bind.Slot
	DragDropSource bind.Slot
	DragDropTarget bind.Slot
	Disabled       bind.Slot
}

// Spec shorthands. The catalogue is a data table; these keep each row on
// one line.

func str(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgString} }

func optStr(name, def string) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgString, Optional: true, Default: script.String(def)}
}

func integer(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgInt} }

func optInt(name string, def int64) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgInt, Optional: true, Default: script.Int(def)}
}

func optFloat(name string, def float64) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgFloat, Optional: true, Default: script.Float(def)}
}

func number(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgFloat} }

func boolean(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgBool} }

func optBool(name string, def bool) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgBool, Optional: true, Default: script.Bool(def)}
}

func vec2(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgVec2} }

func optVec2(name string, x, y float64) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgVec2, Optional: true, Default: script.Vec2(x, y)}
}

func vec4(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgVec4} }

func optVec4(name string, x, y, z, w float64) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgVec4, Optional: true, Default: script.Vec4(x, y, z, w)}
}

func enum(name string, t *bind.EnumTable) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgEnum, Enum: t}
}

func flags(name string, t *bind.EnumTable) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgEnum, Optional: true, Default: script.Int(0), Enum: t}
}

func outBool(name string) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgOutBool, Optional: true}
}

func outInt(name string) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgOutInt, Optional: true}
}

func outFloat(name string) bind.ArgSpec {
	return bind.ArgSpec{Name: name, Kind: bind.ArgOutFloat, Optional: true}
}

func handle(name string) bind.ArgSpec { return bind.ArgSpec{Name: name, Kind: bind.ArgHandle} }

// NewRegistry builds the full widget binding catalogue over a backend.
// Each scope class registers its closing thunk in the slot table first, so
// the frame-boundary unwind can close anything the script left open.
func NewRegistry(b Backend) (*bind.Registry, Slots) {
	st := bind.NewSlotTable()
	sl := Slots{
		Window:         st.Register("window", b.EndWindow),
		Child:          st.Register("child", b.EndChild),
		StyleVar:       st.Register("style-var", func() { b.PopStyleVar(1) }),
		StyleColor:     st.Register("style-color", func() { b.PopStyleColor(1) }),
		Group:          st.Register("group", b.EndGroup),
		Combo:          st.Register("combo", b.EndCombo),
		TreeNode:       st.Register("tree-node", b.TreePop),
		ListBox:        st.Register("list-box", b.EndListBox),
		MenuBar:        st.Register("menu-bar", b.EndMenuBar),
		MainMenuBar:    st.Register("main-menu-bar", b.EndMainMenuBar),
		Menu:           st.Register("menu", b.EndMenu),
		Tooltip:        st.Register("tooltip", b.EndTooltip),
		Popup:          st.Register("popup", b.EndPopup),
		Table:          st.Register("table", b.EndTable),
		TabBar:         st.Register("tab-bar", b.EndTabBar),
		TabItem:        st.Register("tab-item", b.EndTabItem),
		DragDropSource: st.Register("drag-drop-source", b.EndDragDropSource),
		DragDropTarget: st.Register("drag-drop-target", b.EndDragDropTarget),
		Disabled:       st.Register("disabled", b.EndDisabled),
	}

	r := bind.NewRegistry(st)
	reg := r.MustRegister

	condOpen := func(s bind.Slot) *bind.OpenSpec { return &bind.OpenSpec{Slot: s, Conditional: true} }
	alwaysOpen := func(s bind.Slot) *bind.OpenSpec { return &bind.OpenSpec{Slot: s} }
	closes := func(s bind.Slot) *bind.CloseSpec { return &bind.CloseSpec{Slot: s} }
	closesUnwind := func(s bind.Slot) *bind.CloseSpec { return &bind.CloseSpec{Slot: s, Unwind: true} }

	// --- Windows and child regions -------------------------------------

	reg(&bind.Descriptor{
		Name: "Begin",
		Args: []bind.ArgSpec{str("name"), outBool("p_open"), flags("flags", WindowFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Window),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginWindow(inv.String(0), inv.BoolPtr(1), inv.Enum(2)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "End",
		Ret:   bind.RetNone,
		Close: closes(sl.Window),
		Fn:    func(inv *bind.Invocation) { b.EndWindow() },
	})
	reg(&bind.Descriptor{
		Name: "BeginChild",
		Args: []bind.ArgSpec{
			str("str_id"), optVec2("size", 0, 0),
			flags("child_flags", ChildFlags), flags("window_flags", WindowFlags),
		},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Child),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginChild(inv.String(0), inv.Vec2(1), inv.Enum(2), inv.Enum(3)))
		},
	})
	// Overload taking a numeric id instead of a string id.
	reg(&bind.Descriptor{
		Name: "BeginChild2",
		Args: []bind.ArgSpec{
			integer("id"), optVec2("size", 0, 0),
			flags("child_flags", ChildFlags), flags("window_flags", WindowFlags),
		},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Child),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginChildID(inv.Int(0), inv.Vec2(1), inv.Enum(2), inv.Enum(3)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndChild",
		Ret:   bind.RetNone,
		Close: closes(sl.Child),
		Fn:    func(inv *bind.Invocation) { b.EndChild() },
	})
	reg(&bind.Descriptor{
		Name: "SetNextWindowPos",
		Args: []bind.ArgSpec{vec2("pos"), flags("cond", Cond)},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.SetNextWindowPos(inv.Vec2(0), inv.Enum(1)) },
	})
	reg(&bind.Descriptor{
		Name: "SetNextWindowSize",
		Args: []bind.ArgSpec{vec2("size"), flags("cond", Cond)},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.SetNextWindowSize(inv.Vec2(0), inv.Enum(1)) },
	})
	reg(&bind.Descriptor{
		Name: "GetWindowPos",
		Ret:  bind.RetVec2,
		Fn: func(inv *bind.Invocation) {
			p := b.GetWindowPos()
			inv.ReturnVec2(p[0], p[1])
		},
	})
	reg(&bind.Descriptor{
		Name: "GetWindowSize",
		Ret:  bind.RetVec2,
		Fn: func(inv *bind.Invocation) {
			s := b.GetWindowSize()
			inv.ReturnVec2(s[0], s[1])
		},
	})
	reg(&bind.Descriptor{
		Name: "IsWindowFocused",
		Args: []bind.ArgSpec{flags("flags", HoveredFlags)},
		Ret:  bind.RetBool,
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.IsWindowFocused(inv.Enum(0))) },
	})

	// --- Style and layout stacks ---------------------------------------

	reg(&bind.Descriptor{
		Name: "PushStyleVar",
		Args: []bind.ArgSpec{enum("idx", StyleVar), number("val")},
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.StyleVar),
		Fn:   func(inv *bind.Invocation) { b.PushStyleVar(inv.Enum(0), inv.Float(1)) },
	})
	reg(&bind.Descriptor{
		Name: "PushStyleVar2",
		Args: []bind.ArgSpec{enum("idx", StyleVar), vec2("val")},
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.StyleVar),
		Fn:   func(inv *bind.Invocation) { b.PushStyleVarVec2(inv.Enum(0), inv.Vec2(1)) },
	})
	reg(&bind.Descriptor{
		Name:  "PopStyleVar",
		Args:  []bind.ArgSpec{optInt("count", 1)},
		Ret:   bind.RetNone,
		Close: closes(sl.StyleVar),
		Fn:    func(inv *bind.Invocation) { b.PopStyleVar(inv.Int(0)) },
	})
	reg(&bind.Descriptor{
		Name: "PushStyleColor",
		Args: []bind.ArgSpec{enum("idx", StyleColor), vec4("col")},
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.StyleColor),
		Fn:   func(inv *bind.Invocation) { b.PushStyleColor(inv.Enum(0), inv.Vec4(1)) },
	})
	reg(&bind.Descriptor{
		Name:  "PopStyleColor",
		Args:  []bind.ArgSpec{optInt("count", 1)},
		Ret:   bind.RetNone,
		Close: closes(sl.StyleColor),
		Fn:    func(inv *bind.Invocation) { b.PopStyleColor(inv.Int(0)) },
	})
	reg(&bind.Descriptor{
		Name: "BeginGroup",
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.Group),
		Fn:   func(inv *bind.Invocation) { b.BeginGroup() },
	})
	reg(&bind.Descriptor{
		Name:  "EndGroup",
		Ret:   bind.RetNone,
		Close: closes(sl.Group),
		Fn:    func(inv *bind.Invocation) { b.EndGroup() },
	})
	reg(&bind.Descriptor{
		Name: "BeginDisabled",
		Args: []bind.ArgSpec{optBool("disabled", true)},
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.Disabled),
		Fn:   func(inv *bind.Invocation) { b.BeginDisabled(inv.Bool(0)) },
	})
	reg(&bind.Descriptor{
		Name:  "EndDisabled",
		Ret:   bind.RetNone,
		Close: closes(sl.Disabled),
		Fn:    func(inv *bind.Invocation) { b.EndDisabled() },
	})
	reg(&bind.Descriptor{
		Name: "Separator",
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.Separator() },
	})
	reg(&bind.Descriptor{
		Name: "SameLine",
		Args: []bind.ArgSpec{optFloat("offset_from_start_x", 0), optFloat("spacing", -1)},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.SameLine(inv.Float(0), inv.Float(1)) },
	})
	reg(&bind.Descriptor{
		Name: "Dummy",
		Args: []bind.ArgSpec{vec2("size")},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.Dummy(inv.Vec2(0)) },
	})

	// --- Text and basic widgets ----------------------------------------

	// The native Text is format-string variadic. General marshaling does
	// not support variadics, so it is bound degenerate: one opaque string,
	// no interpolation. Deliberate deviation from the native signature.
	reg(&bind.Descriptor{
		Name: "Text",
		Args: []bind.ArgSpec{str("text")},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.Text(inv.String(0)) },
	})
	reg(&bind.Descriptor{
		Name: "TextColored",
		Args: []bind.ArgSpec{vec4("col"), str("text")},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.TextColored(inv.Vec4(0), inv.String(1)) },
	})
	reg(&bind.Descriptor{
		Name: "Button",
		Args: []bind.ArgSpec{str("label"), optVec2("size", 0, 0)},
		Ret:  bind.RetBool,
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.Button(inv.String(0), inv.Vec2(1))) },
	})
	reg(&bind.Descriptor{
		Name: "SmallButton",
		Args: []bind.ArgSpec{str("label")},
		Ret:  bind.RetBool,
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.SmallButton(inv.String(0))) },
	})
	reg(&bind.Descriptor{
		Name: "ArrowButton",
		Args: []bind.ArgSpec{str("str_id"), enum("dir", Dir)},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.ArrowButton(inv.String(0), inv.Enum(1)))
		},
	})
	reg(&bind.Descriptor{
		Name: "Checkbox",
		Args: []bind.ArgSpec{str("label"), outBool("v")},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.Checkbox(inv.String(0), inv.BoolPtr(1)))
		},
	})
	reg(&bind.Descriptor{
		Name: "RadioButton",
		Args: []bind.ArgSpec{str("label"), boolean("active")},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.RadioButton(inv.String(0), inv.Bool(1)))
		},
	})
	reg(&bind.Descriptor{
		Name: "SliderFloat",
		Args: []bind.ArgSpec{str("label"), outFloat("v"), number("v_min"), number("v_max")},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.SliderFloat(inv.String(0), inv.FloatPtr(1), inv.Float(2), inv.Float(3)))
		},
	})
	reg(&bind.Descriptor{
		Name: "SliderInt",
		Args: []bind.ArgSpec{str("label"), outInt("v"), integer("v_min"), integer("v_max")},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.SliderInt(inv.String(0), inv.IntPtr(1), inv.Int(2), inv.Int(3)))
		},
	})
	reg(&bind.Descriptor{
		Name: "InputInt",
		Args: []bind.ArgSpec{str("label"), outInt("v"), optInt("step", 1), optInt("step_fast", 100)},
		Ret:  bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.InputInt(inv.String(0), inv.IntPtr(1), inv.Int(2), inv.Int(3)))
		},
	})
	reg(&bind.Descriptor{
		Name: "ProgressBar",
		Args: []bind.ArgSpec{number("fraction"), optVec2("size_arg", -1, 0), optStr("overlay", "")},
		Ret:  bind.RetNone,
		Fn: func(inv *bind.Invocation) {
			b.ProgressBar(inv.Float(0), inv.Vec2(1), inv.String(2))
		},
	})
	reg(&bind.Descriptor{
		Name: "Image",
		Args: []bind.ArgSpec{
			handle("texture"), vec2("size"),
			optVec4("tint_col", 1, 1, 1, 1), optVec4("border_col", 0, 0, 0, 0),
		},
		Ret: bind.RetNone,
		Fn: func(inv *bind.Invocation) {
			b.ImageWidget(inv.Handle(0), inv.Vec2(1), inv.Vec4(2), inv.Vec4(3))
		},
	})

	// --- Selection containers ------------------------------------------

	reg(&bind.Descriptor{
		Name: "BeginCombo",
		Args: []bind.ArgSpec{str("label"), str("preview_value"), flags("flags", ComboFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Combo),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginCombo(inv.String(0), inv.String(1), inv.Enum(2)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndCombo",
		Ret:   bind.RetNone,
		Close: closes(sl.Combo),
		Fn:    func(inv *bind.Invocation) { b.EndCombo() },
	})
	reg(&bind.Descriptor{
		Name: "BeginListBox",
		Args: []bind.ArgSpec{str("label"), optVec2("size", 0, 0)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.ListBox),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginListBox(inv.String(0), inv.Vec2(1)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndListBox",
		Ret:   bind.RetNone,
		Close: closes(sl.ListBox),
		Fn:    func(inv *bind.Invocation) { b.EndListBox() },
	})
	reg(&bind.Descriptor{
		Name: "TreeNode",
		Args: []bind.ArgSpec{str("label")},
		Ret:  bind.RetBool,
		Open: condOpen(sl.TreeNode),
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.TreeNode(inv.String(0))) },
	})
	// Overload decorrelating the id from the displayed label.
	reg(&bind.Descriptor{
		Name: "TreeNode2",
		Args: []bind.ArgSpec{str("str_id"), str("label")},
		Ret:  bind.RetBool,
		Open: condOpen(sl.TreeNode),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.TreeNodeID(inv.String(0), inv.String(1)))
		},
	})
	reg(&bind.Descriptor{
		Name: "TreePush",
		Args: []bind.ArgSpec{str("str_id")},
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.TreeNode),
		Fn:   func(inv *bind.Invocation) { b.TreePush(inv.String(0)) },
	})
	reg(&bind.Descriptor{
		Name:  "TreePop",
		Ret:   bind.RetNone,
		Close: closes(sl.TreeNode),
		Fn:    func(inv *bind.Invocation) { b.TreePop() },
	})

	// --- Menus, tooltips, popups ---------------------------------------

	reg(&bind.Descriptor{
		Name: "BeginMenuBar",
		Ret:  bind.RetBool,
		Open: condOpen(sl.MenuBar),
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.BeginMenuBar()) },
	})
	reg(&bind.Descriptor{
		Name:  "EndMenuBar",
		Ret:   bind.RetNone,
		Close: closes(sl.MenuBar),
		Fn:    func(inv *bind.Invocation) { b.EndMenuBar() },
	})
	reg(&bind.Descriptor{
		Name: "BeginMainMenuBar",
		Ret:  bind.RetBool,
		Open: condOpen(sl.MainMenuBar),
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.BeginMainMenuBar()) },
	})
	reg(&bind.Descriptor{
		Name:  "EndMainMenuBar",
		Ret:   bind.RetNone,
		Close: closes(sl.MainMenuBar),
		Fn:    func(inv *bind.Invocation) { b.EndMainMenuBar() },
	})
	reg(&bind.Descriptor{
		Name: "BeginMenu",
		Args: []bind.ArgSpec{str("label"), optBool("enabled", true)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Menu),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginMenu(inv.String(0), inv.Bool(1)))
		},
	})
	// Menus re-enter (a menu bar inside a menu inside a menu bar), so the
	// close also terminates anything still open inside the menu.
	reg(&bind.Descriptor{
		Name:  "EndMenu",
		Ret:   bind.RetNone,
		Close: closesUnwind(sl.Menu),
		Fn:    func(inv *bind.Invocation) { b.EndMenu() },
	})
	reg(&bind.Descriptor{
		Name: "MenuItem",
		Args: []bind.ArgSpec{
			str("label"), optStr("shortcut", ""), outBool("selected"), optBool("enabled", true),
		},
		Ret: bind.RetBool,
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.MenuItem(inv.String(0), inv.String(1), inv.BoolPtr(2), inv.Bool(3)))
		},
	})
	reg(&bind.Descriptor{
		Name: "BeginTooltip",
		Ret:  bind.RetNone,
		Open: alwaysOpen(sl.Tooltip),
		Fn:   func(inv *bind.Invocation) { b.BeginTooltip() },
	})
	reg(&bind.Descriptor{
		Name:  "EndTooltip",
		Ret:   bind.RetNone,
		Close: closes(sl.Tooltip),
		Fn:    func(inv *bind.Invocation) { b.EndTooltip() },
	})
	reg(&bind.Descriptor{
		Name: "BeginPopup",
		Args: []bind.ArgSpec{str("str_id"), flags("flags", PopupFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Popup),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginPopup(inv.String(0), inv.Enum(1)))
		},
	})
	reg(&bind.Descriptor{
		Name: "BeginPopupModal",
		Args: []bind.ArgSpec{str("name"), outBool("p_open"), flags("flags", PopupFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Popup),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginPopupModal(inv.String(0), inv.BoolPtr(1), inv.Enum(2)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndPopup",
		Ret:   bind.RetNone,
		Close: closes(sl.Popup),
		Fn:    func(inv *bind.Invocation) { b.EndPopup() },
	})
	reg(&bind.Descriptor{
		Name: "OpenPopup",
		Args: []bind.ArgSpec{str("str_id"), flags("popup_flags", PopupFlags)},
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.OpenPopup(inv.String(0), inv.Enum(1)) },
	})

	// --- Tables and tab bars -------------------------------------------

	reg(&bind.Descriptor{
		Name: "BeginTable",
		Args: []bind.ArgSpec{
			str("str_id"), integer("columns"),
			flags("flags", TableFlags), optVec2("outer_size", 0, 0),
		},
		Ret:  bind.RetBool,
		Open: condOpen(sl.Table),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginTable(inv.String(0), inv.Int(1), inv.Enum(2), inv.Vec2(3)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndTable",
		Ret:   bind.RetNone,
		Close: closes(sl.Table),
		Fn:    func(inv *bind.Invocation) { b.EndTable() },
	})
	reg(&bind.Descriptor{
		Name: "TableNextRow",
		Ret:  bind.RetNone,
		Fn:   func(inv *bind.Invocation) { b.TableNextRow() },
	})
	reg(&bind.Descriptor{
		Name: "TableNextColumn",
		Ret:  bind.RetBool,
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.TableNextColumn()) },
	})
	reg(&bind.Descriptor{
		Name: "BeginTabBar",
		Args: []bind.ArgSpec{str("str_id"), flags("flags", TabBarFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.TabBar),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginTabBar(inv.String(0), inv.Enum(1)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndTabBar",
		Ret:   bind.RetNone,
		Close: closes(sl.TabBar),
		Fn:    func(inv *bind.Invocation) { b.EndTabBar() },
	})
	reg(&bind.Descriptor{
		Name: "BeginTabItem",
		Args: []bind.ArgSpec{str("label"), outBool("p_open"), flags("flags", TabItemFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.TabItem),
		Fn: func(inv *bind.Invocation) {
			inv.ReturnBool(b.BeginTabItem(inv.String(0), inv.BoolPtr(1), inv.Enum(2)))
		},
	})
	reg(&bind.Descriptor{
		Name:  "EndTabItem",
		Ret:   bind.RetNone,
		Close: closes(sl.TabItem),
		Fn:    func(inv *bind.Invocation) { b.EndTabItem() },
	})

	// --- Drag and drop -------------------------------------------------

	reg(&bind.Descriptor{
		Name: "BeginDragDropSource",
		Args: []bind.ArgSpec{flags("flags", DragDropFlags)},
		Ret:  bind.RetBool,
		Open: condOpen(sl.DragDropSource),
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.BeginDragDropSource(inv.Enum(0))) },
	})
	reg(&bind.Descriptor{
		Name:  "EndDragDropSource",
		Ret:   bind.RetNone,
		Close: closes(sl.DragDropSource),
		Fn:    func(inv *bind.Invocation) { b.EndDragDropSource() },
	})
	reg(&bind.Descriptor{
		Name: "BeginDragDropTarget",
		Ret:  bind.RetBool,
		Open: condOpen(sl.DragDropTarget),
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.BeginDragDropTarget()) },
	})
	reg(&bind.Descriptor{
		Name:  "EndDragDropTarget",
		Ret:   bind.RetNone,
		Close: closes(sl.DragDropTarget),
		Fn:    func(inv *bind.Invocation) { b.EndDragDropTarget() },
	})

	// --- Queries --------------------------------------------------------

	reg(&bind.Descriptor{
		Name: "IsItemHovered",
		Args: []bind.ArgSpec{flags("flags", HoveredFlags)},
		Ret:  bind.RetBool,
		Fn:   func(inv *bind.Invocation) { inv.ReturnBool(b.IsItemHovered(inv.Enum(0))) },
	})
	reg(&bind.Descriptor{
		Name: "GetMousePos",
		Ret:  bind.RetVec2,
		Fn: func(inv *bind.Invocation) {
			p := b.GetMousePos()
			inv.ReturnVec2(p[0], p[1])
		},
	})
	reg(&bind.Descriptor{
		Name: "CalcTextSize",
		Args: []bind.ArgSpec{
			str("text"), optBool("hide_text_after_double_hash", false), optFloat("wrap_width", -1),
		},
		Ret: bind.RetVec2,
		Fn: func(inv *bind.Invocation) {
			s := b.CalcTextSize(inv.String(0), inv.Bool(1), inv.Float(2))
			inv.ReturnVec2(s[0], s[1])
		},
	})
	reg(&bind.Descriptor{
		Name: "GetStyleColor",
		Args: []bind.ArgSpec{enum("idx", StyleColor)},
		Ret:  bind.RetVec4,
		Fn: func(inv *bind.Invocation) {
			c := b.GetStyleColor(inv.Enum(0))
			inv.ReturnVec4(c[0], c[1], c[2], c[3])
		},
	})
	reg(&bind.Descriptor{
		Name: "GetVersion",
		Ret:  bind.RetString,
		Fn:   func(inv *bind.Invocation) { inv.ReturnString(b.GetVersion()) },
	})

	return r, sl
}
