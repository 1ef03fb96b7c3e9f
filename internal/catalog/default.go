package catalog

// Default returns the built-in showroom catalog: twelve hanging ornaments.
// Used when no catalog file is given on the command line.
func Default() []Record {
	return []Record{
		{
			ID: 1, DisplayName: "Lentera Kuningan", ImageRef: "lentera-kuningan.png",
			Description: "Hand-spun brass lantern with a pierced star pattern that throws warm speckled light.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kuningan", SpecDimensions: "18 x 18 x 32 cm", SpecWeight: "1.4 kg",
				SpecFinish: "Antique patina", SpecCategory: "Lentera", SpecWarranty: "2 tahun",
			},
		},
		{
			ID: 2, DisplayName: "Bola Mozaik Biru", ImageRef: "bola-mozaik-biru.png",
			Description: "Cobalt glass mosaic sphere, each shard cut and set by hand.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kaca mozaik", SpecDimensions: "Ø 14 cm", SpecWeight: "0.6 kg",
				SpecFinish: "Glossy", SpecCategory: "Bola gantung",
			},
		},
		{
			ID: 3, DisplayName: "Lonceng Angin Tembaga", ImageRef: "lonceng-tembaga.png",
			Description: "Five copper chimes tuned to a pentatonic scale, weathered sail plate.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Tembaga", SpecDimensions: "12 x 12 x 60 cm", SpecWeight: "0.9 kg",
				SpecFinish: "Brushed", SpecCategory: "Lonceng", SpecWarranty: "1 tahun",
			},
		},
		{
			ID: 4, DisplayName: "Bintang Rotan", ImageRef: "bintang-rotan.png",
			Description: "Woven rattan star with a natural edge, light enough for a window frame.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Rotan alami", SpecDimensions: "30 x 30 x 6 cm", SpecWeight: "0.2 kg",
				SpecFinish: "Natural", SpecCategory: "Anyaman",
			},
		},
		{
			ID: 5, DisplayName: "Prisma Kristal", ImageRef: "prisma-kristal.png",
			Description: "Faceted crystal prism that splits afternoon sun into a slow-moving spectrum.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kristal K9", SpecDimensions: "6 x 6 x 9 cm", SpecWeight: "0.35 kg",
				SpecFinish: "Polished", SpecCategory: "Kristal", SpecWarranty: "1 tahun",
			},
		},
		{
			ID: 6, DisplayName: "Burung Kayu Jati", ImageRef: "burung-jati.png",
			Description: "Carved teak swallow balanced on a single brass wire.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kayu jati", SpecDimensions: "22 x 8 x 5 cm", SpecWeight: "0.3 kg",
				SpecFinish: "Oiled", SpecCategory: "Ukiran",
			},
		},
		{
			ID: 7, DisplayName: "Cermin Matahari", ImageRef: "cermin-matahari.png",
			Description: "Small convex mirror ringed with hammered brass rays.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kuningan & kaca", SpecDimensions: "Ø 24 cm", SpecWeight: "0.8 kg",
				SpecFinish: "Hammered", SpecCategory: "Cermin", SpecWarranty: "2 tahun",
			},
		},
		{
			ID: 8, DisplayName: "Tirai Kerang", ImageRef: "tirai-kerang.png",
			Description: "Capiz shell strands that shimmer with the faintest draft.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kerang capiz", SpecDimensions: "20 x 4 x 80 cm", SpecWeight: "0.5 kg",
				SpecFinish: "Natural pearl", SpecCategory: "Tirai",
			},
		},
		{
			ID: 9, DisplayName: "Bulan Keramik", ImageRef: "bulan-keramik.png",
			Description: "Stoneware crescent glazed in a cratered matte white.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Keramik stoneware", SpecDimensions: "26 x 20 x 3 cm", SpecWeight: "0.7 kg",
				SpecFinish: "Matte glaze", SpecCategory: "Keramik",
			},
		},
		{
			ID: 10, DisplayName: "Kap Lampu Bambu", ImageRef: "kap-bambu.png",
			Description: "Open-weave bamboo shade casting ribbed shadows across the ceiling.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Bambu", SpecDimensions: "Ø 35 x 28 cm", SpecWeight: "0.45 kg",
				SpecFinish: "Smoked", SpecCategory: "Kap lampu", SpecWarranty: "1 tahun",
			},
		},
		{
			ID: 11, DisplayName: "Drop Kaca Amber", ImageRef: "drop-amber.png",
			Description: "Teardrop of amber glass blown around a captured air spiral.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Kaca tiup", SpecDimensions: "8 x 8 x 16 cm", SpecWeight: "0.4 kg",
				SpecFinish: "Glossy", SpecCategory: "Kaca tiup",
			},
		},
		{
			ID: 12, DisplayName: "Mandala Besi Tempa", ImageRef: "mandala-besi.png",
			Description: "Wrought iron mandala, forged and blackened in a single piece.",
			Specs: map[SpecKey]string{
				SpecMaterial: "Besi tempa", SpecDimensions: "Ø 40 x 2 cm", SpecWeight: "2.1 kg",
				SpecFinish: "Blackened", SpecCategory: "Besi", SpecWarranty: "3 tahun",
			},
		},
	}
}
