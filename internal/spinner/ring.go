package spinner

// RingName is the registry name of the ring design.
const RingName = "ring"

// DualRingName is the registry name of the dual ring design.
const DualRingName = "dual-ring"

const ringCSS = `.${css_class} {
  display: inline-block;
  position: relative;
  width: ${width}px;
  height: ${height}px;
}
.${css_class} div {
  box-sizing: border-box;
  display: block;
  position: absolute;
  width: ${inner_width}px;
  height: ${inner_height}px;
  margin: ${margin}px;
  border: ${border}px solid ${color};
  border-radius: 50%;
  animation: ${css_class} 1.2s cubic-bezier(0.5, 0, 0.5, 1) infinite;
  border-color: ${color} transparent transparent transparent;
  background-color: ${background_color};
}
.${css_class} div:nth-child(1) {
  animation-delay: -0.45s;
}
.${css_class} div:nth-child(2) {
  animation-delay: -0.3s;
}
.${css_class} div:nth-child(3) {
  animation-delay: -0.15s;
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}`

const ringHTML = `<div></div>
<div></div>
<div></div>
<div></div>`

const dualRingCSS = `.${css_class} {
  display: inline-block;
  width: ${width}px;
  height: ${height}px;
  background-color: ${background_color};
}
.${css_class}:after {
  content: " ";
  box-sizing: border-box;
  display: block;
  width: ${inner_width}px;
  height: ${inner_height}px;
  margin: ${margin}px;
  border-radius: 50%;
  border: ${border}px solid ${color};
  border-color: ${color} transparent ${color} transparent;
  animation: ${css_class} 1.2s linear infinite;
}
@keyframes ${css_class} {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}`

// NewRing returns the four segment ring: four stacked arcs rotating with
// staggered delays.
func NewRing() *Scaled {
	return NewScaled(RingName, ringCSS, ringHTML, DefaultRules())
}

// NewDualRing returns a single element spinner with two opposite arcs.
func NewDualRing() *Scaled {
	return NewScaled(DualRingName, dualRingCSS, "", DefaultRules())
}
