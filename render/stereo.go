package render

import "video-gl/core"

// stereoCrop narrows every plane's crop rectangle to the left-eye region of a
// stereo frame before tessellation. Top-bottom layouts keep the upper half,
// side-by-side layouts keep the left half; anything else passes through
// unchanged.
func stereoCrop(mode core.Multiview, crops []texCrop) {
	var coefW, coefH, offW, offH float32

	switch mode {
	case core.MultiviewStereoTB:
		coefW, coefH = 1, 0.5
	case core.MultiviewStereoSBS:
		coefW, coefH = 0.5, 1
	default:
		return
	}

	for i := range crops {
		width := crops[i].right - crops[i].left
		crops[i].left += width * offW
		crops[i].right = crops[i].left + width*coefW

		height := crops[i].bottom - crops[i].top
		crops[i].top += height * offH
		crops[i].bottom = crops[i].top + height*coefH
	}
}
