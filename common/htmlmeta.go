package common

// voidElements never get a closing tag and never receive children; the
// template builder must not emit a walk step into them.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void HTML element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// svgElements is the set of tag names that must be created in the SVG
// namespace and whose template-string ancestor also switches to SVG.
var svgElements = map[string]bool{
	"svg": true, "altGlyph": true, "altGlyphDef": true, "altGlyphItem": true,
	"animate": true, "animateColor": true, "animateMotion": true, "animateTransform": true,
	"circle": true, "clipPath": true, "color-profile": true, "cursor": true,
	"defs": true, "desc": true, "ellipse": true, "feBlend": true,
	"feColorMatrix": true, "feComponentTransfer": true, "feComposite": true,
	"feConvolveMatrix": true, "feDiffuseLighting": true, "feDisplacementMap": true,
	"feDistantLight": true, "feDropShadow": true, "feFlood": true, "feFuncA": true,
	"feFuncB": true, "feFuncG": true, "feFuncR": true, "feGaussianBlur": true,
	"feImage": true, "feMerge": true, "feMergeNode": true, "feMorphology": true,
	"feOffset": true, "fePointLight": true, "feSpecularLighting": true,
	"feSpotLight": true, "feTile": true, "feTurbulence": true, "filter": true,
	"font": true, "font-face": true, "foreignObject": true, "g": true,
	"glyph": true, "glyphRef": true, "hkern": true, "image": true, "line": true,
	"linearGradient": true, "marker": true, "mask": true, "metadata": true,
	"mpath": true, "path": true, "pattern": true, "polygon": true, "polyline": true,
	"radialGradient": true, "rect": true, "set": true, "stop": true,
	"switch": true, "symbol": true, "text": true, "textPath": true,
	"tref": true, "tspan": true, "use": true, "view": true, "vkern": true,
}

// IsSVGElement reports whether tag must be created in the SVG namespace.
func IsSVGElement(tag string) bool {
	return svgElements[tag]
}

// booleanAttributes is the HTML boolean attribute set: presence, not value,
// is the signal, so a falsy dynamic binding must remove the attribute
// rather than set it to "false".
var booleanAttributes = map[string]bool{
	"allowfullscreen": true, "async": true, "autofocus": true, "autoplay": true,
	"checked": true, "controls": true, "default": true, "disabled": true,
	"formnovalidate": true, "hidden": true, "indeterminate": true,
	"inert": true, "ismap": true, "itemscope": true, "loop": true,
	"multiple": true, "muted": true, "nomodule": true, "novalidate": true,
	"open": true, "playsinline": true, "readonly": true, "required": true,
	"reversed": true, "selected": true, "seamless": true,
}

// IsBooleanAttribute reports whether name follows HTML's presence-only
// boolean attribute semantics.
func IsBooleanAttribute(name string) bool {
	return booleanAttributes[name]
}

// delegatedEventDefaults is the base set of bubbling DOM events considered
// safe to delegate to a single document-level listener.
var delegatedEventDefaults = map[string]bool{
	"click": true, "dblclick": true, "mousedown": true, "mouseup": true,
	"mousemove": true, "mouseover": true, "mouseout": true, "pointerdown": true,
	"pointerup": true, "pointermove": true, "pointerover": true, "pointerout": true,
	"touchstart": true, "touchmove": true, "touchend": true, "keydown": true,
	"keyup": true, "keypress": true, "input": true, "change": true,
	"submit": true, "focusin": true, "focusout": true, "contextmenu": true,
	"wheel": true, "drag": true, "dragstart": true, "dragend": true,
	"dragover": true, "dragenter": true, "dragleave": true, "drop": true,
}

// IsDelegatableEvent reports whether name is delegatable by default.
func IsDelegatableEvent(name string) bool {
	return delegatedEventDefaults[name]
}

// propertyAliases maps a JSX attribute spelling onto the HTML attribute
// name ("class", "for") baked into the template or passed to setAttribute,
// for the handful of attributes whose HTML and property names disagree.
var propertyAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// ResolveAttributeAlias returns the canonical HTML attribute name for a
// JSX prop spelling, or name unchanged if there is no alias.
func ResolveAttributeAlias(name string) string {
	if alias, ok := propertyAliases[name]; ok {
		return alias
	}
	return name
}
