package mapview

// originColor marks the searched location.
const originColor = "red"

// palette is cycled through for place markers.
var palette = [...]string{"blue", "green", "purple", "orange", "darkblue"}

// ColorFor returns the marker color of the place at index.
func ColorFor(index int) string {
	i := index % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}
