package ui

import "github.com/hollis/imscript/bind"

// Enum tables for the widget surface. Values track the native API's
// constants; scripts pass either a constant name or a raw integer, so
// flag sets can be combined on the script side.

// WindowFlags configure BeginWindow and the window flags of child regions.
var WindowFlags = bind.NewEnumTable("WindowFlags").
	Add("None", 0).
	Add("NoTitleBar", 1<<0).
	Add("NoResize", 1<<1).
	Add("NoMove", 1<<2).
	Add("NoScrollbar", 1<<3).
	Add("NoScrollWithMouse", 1<<4).
	Add("NoCollapse", 1<<5).
	Add("AlwaysAutoResize", 1<<6).
	Add("NoBackground", 1<<7).
	Add("NoSavedSettings", 1<<8).
	Add("NoMouseInputs", 1<<9).
	Add("MenuBar", 1<<10).
	Add("HorizontalScrollbar", 1<<11).
	Add("NoFocusOnAppearing", 1<<12).
	Add("NoBringToFrontOnFocus", 1<<13).
	Add("NoNav", (1<<16)|(1<<17)).
	Add("NoDecoration", (1<<0)|(1<<1)|(1<<3)|(1<<5)).
	Add("NoInputs", (1<<9)|(1<<16)|(1<<17))

// ChildFlags configure child regions.
var ChildFlags = bind.NewEnumTable("ChildFlags").
	Add("None", 0).
	Add("Borders", 1<<0).
	Add("AlwaysUseWindowPadding", 1<<1).
	Add("ResizeX", 1<<2).
	Add("ResizeY", 1<<3).
	Add("AutoResizeX", 1<<4).
	Add("AutoResizeY", 1<<5).
	Add("AlwaysAutoResize", 1<<6).
	Add("FrameStyle", 1<<7)

// ComboFlags configure BeginCombo.
var ComboFlags = bind.NewEnumTable("ComboFlags").
	Add("None", 0).
	Add("PopupAlignLeft", 1<<0).
	Add("HeightSmall", 1<<1).
	Add("HeightRegular", 1<<2).
	Add("HeightLarge", 1<<3).
	Add("HeightLargest", 1<<4).
	Add("NoArrowButton", 1<<5).
	Add("NoPreview", 1<<6).
	Add("WidthFitPreview", 1<<7)

// PopupFlags configure OpenPopup and BeginPopup.
var PopupFlags = bind.NewEnumTable("PopupFlags").
	Add("None", 0).
	Add("MouseButtonLeft", 0).
	Add("MouseButtonRight", 1).
	Add("MouseButtonMiddle", 2).
	Add("NoReopen", 1<<5).
	Add("NoOpenOverExistingPopup", 1<<7).
	Add("NoOpenOverItems", 1<<8).
	Add("AnyPopupId", 1<<10).
	Add("AnyPopupLevel", 1<<11)

// TableFlags configure BeginTable.
var TableFlags = bind.NewEnumTable("TableFlags").
	Add("None", 0).
	Add("Resizable", 1<<0).
	Add("Reorderable", 1<<1).
	Add("Hideable", 1<<2).
	Add("Sortable", 1<<3).
	Add("NoSavedSettings", 1<<4).
	Add("ContextMenuInBody", 1<<5).
	Add("RowBg", 1<<6).
	Add("BordersInnerH", 1<<7).
	Add("BordersOuterH", 1<<8).
	Add("BordersInnerV", 1<<9).
	Add("BordersOuterV", 1<<10).
	Add("Borders", (1<<7)|(1<<8)|(1<<9)|(1<<10)).
	Add("SizingFixedFit", 1<<13).
	Add("ScrollX", 1<<24).
	Add("ScrollY", 1<<25)

// TabBarFlags configure BeginTabBar.
var TabBarFlags = bind.NewEnumTable("TabBarFlags").
	Add("None", 0).
	Add("Reorderable", 1<<0).
	Add("AutoSelectNewTabs", 1<<1).
	Add("TabListPopupButton", 1<<2).
	Add("NoCloseWithMiddleMouseButton", 1<<3).
	Add("NoTabListScrollingButtons", 1<<4).
	Add("NoTooltip", 1<<5).
	Add("FittingPolicyResizeDown", 1<<7).
	Add("FittingPolicyScroll", 1<<8)

// TabItemFlags configure BeginTabItem.
var TabItemFlags = bind.NewEnumTable("TabItemFlags").
	Add("None", 0).
	Add("UnsavedDocument", 1<<0).
	Add("SetSelected", 1<<1).
	Add("NoCloseWithMiddleMouseButton", 1<<2).
	Add("NoPushId", 1<<3).
	Add("NoTooltip", 1<<4).
	Add("NoReorder", 1<<5).
	Add("Leading", 1<<6).
	Add("Trailing", 1<<7)

// DragDropFlags configure BeginDragDropSource.
var DragDropFlags = bind.NewEnumTable("DragDropFlags").
	Add("None", 0).
	Add("SourceNoPreviewTooltip", 1<<0).
	Add("SourceNoDisableHover", 1<<1).
	Add("SourceNoHoldToOpenOthers", 1<<2).
	Add("SourceAllowNullID", 1<<3).
	Add("SourceExtern", 1<<4).
	Add("PayloadAutoExpire", 1<<5)

// HoveredFlags configure IsItemHovered and IsWindowFocused-style queries.
var HoveredFlags = bind.NewEnumTable("HoveredFlags").
	Add("None", 0).
	Add("ChildWindows", 1<<0).
	Add("RootWindow", 1<<1).
	Add("AnyWindow", 1<<2).
	Add("NoPopupHierarchy", 1<<3).
	Add("AllowWhenBlockedByPopup", 1<<5).
	Add("AllowWhenBlockedByActiveItem", 1<<7).
	Add("AllowWhenOverlapped", (1<<8)|(1<<9)).
	Add("RectOnly", (1<<5)|(1<<7)|(1<<8)|(1<<9)).
	Add("RootAndChildWindows", (1<<0)|(1<<1))

// Dir names the four cardinal directions for ArrowButton.
var Dir = bind.NewEnumTable("Dir").
	Add("Left", 0).
	Add("Right", 1).
	Add("Up", 2).
	Add("Down", 3)

// Cond names the condition under which Set* calls take effect.
var Cond = bind.NewEnumTable("Cond").
	Add("None", 0).
	Add("Always", 1<<0).
	Add("Once", 1<<1).
	Add("FirstUseEver", 1<<2).
	Add("Appearing", 1<<3)

// StyleVar names the pushable style variables.
var StyleVar = bind.NewEnumTable("StyleVar").
	Add("Alpha", 0).
	Add("DisabledAlpha", 1).
	Add("WindowPadding", 2).
	Add("WindowRounding", 3).
	Add("WindowBorderSize", 4).
	Add("WindowMinSize", 5).
	Add("ChildRounding", 7).
	Add("FramePadding", 10).
	Add("FrameRounding", 11).
	Add("ItemSpacing", 13).
	Add("IndentSpacing", 15)

// StyleColor names the pushable style colors.
var StyleColor = bind.NewEnumTable("StyleColor").
	Add("Text", 0).
	Add("TextDisabled", 1).
	Add("WindowBg", 2).
	Add("ChildBg", 3).
	Add("PopupBg", 4).
	Add("Border", 5).
	Add("FrameBg", 7).
	Add("TitleBg", 10).
	Add("MenuBarBg", 13).
	Add("Button", 21).
	Add("ButtonHovered", 22).
	Add("ButtonActive", 23).
	Add("Header", 24)

// EnumTables lists every enum table by name, for tooling and generated
// tests walking the configuration surface.
func EnumTables() map[string]*bind.EnumTable {
	return map[string]*bind.EnumTable{
		"WindowFlags":   WindowFlags,
		"ChildFlags":    ChildFlags,
		"ComboFlags":    ComboFlags,
		"PopupFlags":    PopupFlags,
		"TableFlags":    TableFlags,
		"TabBarFlags":   TabBarFlags,
		"TabItemFlags":  TabItemFlags,
		"DragDropFlags": DragDropFlags,
		"HoveredFlags":  HoveredFlags,
		"Dir":           Dir,
		"Cond":          Cond,
		"StyleVar":      StyleVar,
		"StyleColor":    StyleColor,
	}
}
