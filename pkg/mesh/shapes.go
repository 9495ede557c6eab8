package mesh

const (
	PositionLocation uint32 = 0
	ColorLocation    uint32 = 1
)

// Triangle is a single triangle with red, green and blue corners, positions
// and colors in separate buffers.
func Triangle() Mesh {
	return Mesh{
		Mode: Triangles,
		Buffers: []Buffer{
			{
				Data: []float32{
					-1, -1, 0,
					1, -1, 0,
					0, 1, 0,
				},
				Attributes: []Attribute{{Location: PositionLocation, Size: 3}},
			},
			{
				Data: []float32{
					1, 0, 0,
					0, 1, 0,
					0, 0, 1,
				},
				Attributes: []Attribute{{Location: ColorLocation, Size: 3}},
			},
		},
	}
}

// Cube is a unit cube centered on the origin, two triangles per face and one
// color per face.
func Cube() Mesh {
	corners := [8][3]float32{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // front
		{1, 0, 3, 2}, // back
		{0, 4, 7, 3}, // left
		{5, 1, 2, 6}, // right
		{7, 6, 2, 3}, // top
		{0, 1, 5, 4}, // bottom
	}
	colors := [6][3]float32{
		{0.9, 0.2, 0.2},
		{0.2, 0.9, 0.2},
		{0.2, 0.2, 0.9},
		{0.9, 0.9, 0.2},
		{0.2, 0.9, 0.9},
		{0.9, 0.2, 0.9},
	}

	data := make([]float32, 0, 6*6*6)
	for f, face := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := corners[face[i]]
			c := colors[f]
			data = append(data, p[0], p[1], p[2], c[0], c[1], c[2])
		}
	}
	return Mesh{
		Mode: Triangles,
		Buffers: []Buffer{{
			Data: data,
			Attributes: []Attribute{
				{Location: PositionLocation, Size: 3},
				{Location: ColorLocation, Size: 3},
			},
		}},
	}
}

// FullscreenQuad covers clip space with a four vertex strip.
func FullscreenQuad() Mesh {
	return Mesh{
		Mode: TriangleStrip,
		Buffers: []Buffer{{
			Data: []float32{
				-1, -1,
				1, -1,
				-1, 1,
				1, 1,
			},
			Attributes: []Attribute{{Location: PositionLocation, Size: 2}},
		}},
	}
}
