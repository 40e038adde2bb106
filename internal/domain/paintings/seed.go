package paintings

// seedCatalog is the compiled-in collection. Entries without an explicit id
// get one from SeedID(title, dimensions) when the catalog is built.
var seedCatalog = []Painting{
	{ID: "beliatcho-100x70", Title: "Beliatcho", Price: 50000, Image: "100×70 cm 50000.jpeg", Dimensions: "100×70 cm", Type: "Acrylic Paint", Date: "2023-01-01"},
	{ID: "abstract-40x40-1", Title: "Acrylic paint", Price: 20000, Image: "Acrylic paint  40 ×40  cm -- 20000.jpeg", Dimensions: "40×40 cm", Type: "Acrylic Paint", Date: "2023-01-02"},
	{ID: "abstract-40x40-2", Title: "Acrylic paint", Price: 20000, Image: "Acrylic paint - 40×40  cm - 20000.jpeg", Dimensions: "40×40 cm", Type: "Acrylic Paint", Date: "2023-01-03"},
	{ID: "urban-50x70", Title: "paint", Price: 30000, Image: "Acrylic paint -50×70  cm - 30000.jpeg", Dimensions: "50×70 cm", Type: "Acrylic Paint", Date: "2023-01-04"},
	{ID: "botanical-35x50", Title: "Artist", Price: 20000, Image: "Artist acrylic paint - 35×50 cm -  20000.jpeg", Dimensions: "35×50 cm", Type: "Artist Acrylic Paint", Date: "2023-01-05"},
	{ID: "nautical-boat", Title: "Nautical Boat", Price: 30000, Image: "Boat - wood & acrylic - 30000.jpeg", Dimensions: "50×70 cm", Type: "Mixed Media", Date: "2023-01-06"},
	{ID: "fish-market", Title: "Fish Market", Price: 40000, Image: "Fish market Acrylic paint  60 ×80  cm - 40000.jpeg", Dimensions: "60×80 cm", Type: "Acrylic Paint", Date: "2023-01-07"},
	{ID: "fishes-girls", Title: "Fishes & Girls", Price: 60000, Image: "Fishes &girls - 120×120 cm acrylic paint -  60000.jpeg", Dimensions: "120×120 cm", Type: "Acrylic Paint", Date: "2023-01-08"},
	{ID: "fyroz-portrait", Title: "Portrait of Fyroz", Price: 40000, Image: "Fyroz - acrylic paint  -60×80 cm -  40000.jpeg", Dimensions: "60×80 cm", Type: "Acrylic Paint", Date: "2023-01-09"},
	{ID: "Girls", Title: "Girls", Price: 25000, Image: "Girls - 50 ×70  acrylic paint - 25000.jpeg", Dimensions: "50×70 cm", Type: "Acrylic Paint", Date: "2023-01-10"},
	{ID: "Horses", Title: "Horses", Price: 35000, Image: "Horses-  acrylic paint 100×70 cm - 35000.jpeg", Dimensions: "100×70 cm", Type: "Acrylic Paint", Date: "2023-01-11"},
	{ID: "Izees-Ozoris", Title: "Izees & Ozoris", Price: 150000, Image: "Izees &ozoris  3 pieces - 60 ×160  cm  acrylic paint - 150 000.jpeg", Dimensions: "60 ×160  cm", Type: "Acrylic Paint", Date: "2023-01-12"},
	{ID: "Love-stories", Title: "Love stories", Price: 25000, Image: "Love stories - 50 ×70  cm - acrylic paint -  25000.jpeg", Dimensions: "50 ×70  cm", Type: "Acrylic Paint", Date: "2023-01-13"},
	{ID: "Nubian-girl", Title: "Nubian girl", Price: 30000, Image: "Nubian girl acrylic paint  -50×60 cm -  30000.jpeg", Dimensions: "50×60 cm", Type: "acrylic paint", Date: "2023-01-14"},
	{ID: "Sketch-for-a-girl", Title: "Sketch for a girl", Price: 15000, Image: "Sketch  for a girl -  inks -  35 ×50  cm  - 15000.jpeg", Dimensions: "35 ×50  cm", Type: "Acrylic Paint", Date: "2023-01-15"},
	{ID: "Ugly-man", Title: "Ugly man", Price: 40000, Image: "Ugly man - 60 ×80  cm - acrylic paint -  40000.jpeg", Dimensions: "60 ×80  cm", Type: "Acrylic Paint", Date: "2023-01-16"},
	{ID: "El-Set", Title: "El Set", Price: 55000, Image: "100 ×70  cm  oil  on canvas 55000.jpeg", Dimensions: "100 ×70  cm", Type: "oil on canvas", Date: "2023-01-17"},
	{ID: "HOME", Title: "HOME", Price: 55000, Image: "HOME 100 ×70  cm  acrylic on canvas  55000.jpeg", Dimensions: "100 ×70  cm", Type: "Acrylic Paint", Date: "2023-01-18"},
	{ID: "Paint-ink-unipen", Title: "Paint", Price: 15000, Image: "WhatsApp Image 2025-02-12 at 20.53.09.jpeg", Dimensions: "40 ×40 cm", Type: "ink & unipen", Date: "2023-01-19"},
	{ID: "Paint-acrylic-paper", Title: "Paint", Price: 20000, Image: "35×50  cm - acrylic on paper20000le.jpeg", Dimensions: "35×50 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Love  in loss", Price: 40000, Image: "new22 Love  in lossAcrylic paint60×80  cm 40000.jpeg", Dimensions: "60×80  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "عبد العال", Price: 35000, Image: "new21 عبد العال  45×90  acrylic 35000.jpeg", Dimensions: "90×45 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Banat alex", Price: 35000, Image: "new20 Banat alex 45×90  cm Acrylic paint35000.jpeg", Dimensions: "45×90  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Bahary", Price: 45000, Image: "new19 Bahary 100 ×70  cmAcrylic paint45000.jpeg", Dimensions: "100 ×70  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "قريتنا", Price: 40000, Image: "new18 قريتنا Acrylic paint120 ×90 cm 40000.jpeg", Dimensions: "120 ×90 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Nakheel", Price: 50000, Image: "new17 Nakheel  Acrylic paint100×70   cm 50000.jpeg", Dimensions: "100×70cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Hennah", Price: 100000, Image: "new16 HennahOil paint 150 ×140 cm 100000.jpeg", Dimensions: "150 ×140 cm", Type: "Oil paint", Date: "2023-01-20"},
	{Title: "قعدة ستات", Price: 35000, Image: "new15 قعدة ستات Acrylic paint 50 ×70  cm 35000.jpeg", Dimensions: "50 ×70  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Love story", Price: 40000, Image: "new14 Love storyAcrylic paint60 ×80  cm 40000le.jpeg", Dimensions: "60×80  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "DREAM", Price: 25000, Image: "new13_DREAM-ACRYLIC-PAINT-50×70-CM-25000LE.jpeg", Dimensions: "50×70 CM", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Biano", Price: 40000, Image: "new12_Biano-Acrylic-paint-50×70-cm-40000.jpeg", Dimensions: "50×70 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Syad", Price: 20000, Image: "NEW11_Syad-Acrylic-paint-80×80-cm.jpeg", Dimensions: "80×80-cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Alex Cafe", Price: 20000, Image: "new10_Alex_Cafe_Acrylic_Paint_240x120.jpeg", Dimensions: "240x120 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Cafe Time", Price: 20000, Image: "new9_Cafe_Time_Acrylic_Paint_100x70cm.jpeg", Dimensions: "100x70cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Over the nile", Price: 35000, Image: "new8_Overthenile_Acrylic_paint_80x80cm_35000le.jpeg", Dimensions: "80x80cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Paint", Price: 20000, Image: "new7_Acrylic-paint-40×40-cm-20000.jpeg", Dimensions: "40×40-cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Paint", Price: 20000, Image: "new6_35x50-cm-acrylic-paint-20000.jpeg", Dimensions: "35×50 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{ID: "paint-new5-60x80", Title: "Paint", Price: 45000, Image: "new5_acrylic-paint-60×80cm-45000.jpeg", Dimensions: "60×80cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "زنقةالستات", Price: 45000, Image: "new4_زنقة_الستات_Acrylic-paint_60x80cm_45000.jpeg", Dimensions: "60x80 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Horses Dance", Price: 30000, Image: "new3_Horses_Dance_50x70cm_Acrylic_30000.jpeg", Dimensions: "50x70 cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{ID: "paint-35x50-cm-new2", Title: "Paint", Price: 20000, Image: "new2_35×50  cm - acrylic on paper _20000.jpeg", Dimensions: "35×50  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Farah", Price: 100000, Image: "new23 Farah 150 ×140  cmOil paint100000.jpeg", Dimensions: "150 ×140  cm", Type: "Oil paint", Date: "2023-01-20"},
	{Title: "Yoga", Price: 45000, Image: "new24 Yoga Acrylic paint 120 ×10045000.jpeg", Dimensions: "120 ×100 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Love in the see", Price: 50000, Image: "new25 Love in the seeAcrylic paint100×100  cm50000.jpeg", Dimensions: "100×100  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Fishes", Price: 10000, Image: "new26 Fishes 40 ×40  cm 10000.jpeg", Dimensions: "40 ×40  cm", Type: "acrylic on paper", Date: "2023-01-20"},
	{Title: "Zainab زينب", Price: 40000, Image: "new27 Zainab زينب Acrylic paint60 ×80  cm40000.jpeg", Dimensions: "60 ×80  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Paint", Price: 20000, Image: "new35 50cm acrylic on paper _20000.jpeg", Dimensions: "35 50 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Balerena", Price: 35000, Image: "neww_Balerena 50 ×70  cm Acrylic paint35000.jpeg", Dimensions: "50 ×70  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Aziza عزيزة", Price: 35000, Image: "ne1 Aziza عزيزة Acrylic paint60×80  cm 35000.jpeg", Dimensions: "60×80  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Asmahan", Price: 40000, Image: "ne2 Asmahan Acrylic paint45×90 cm 40000.jpeg", Dimensions: "45×90 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Bnt Elsamak", Price: 50000, Image: "ne3 Bnt Elsamak Acrylic paint60×90 cm 50000 le..jpeg", Dimensions: "60×90 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "3 girls", Price: 35000, Image: "ne4 3 girls Acrylic  paint 100×100 cm 35000.jpeg", Dimensions: "100×100 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "عواد Awad", Price: 35000, Image: "ne5 50 ×70  cm Acrylic paint عواد Awad 35000.jpeg", Dimensions: "50 ×70  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "DANCE", Price: 35000, Image: "ne6 DANCE 50 ×70  CMACRYLIC35000 LE.jpeg", Dimensions: "50 ×70  CM", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Dance", Price: 35000, Image: "ne7 Dance 60 ×80  cmAcrylic paint 35000.jpeg", Dimensions: "60 ×80  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "عروس النوبة", Price: 70000, Image: "ne8 عروس النوبة 150 ×140  cm Acrylic paint70000.jpeg", Dimensions: "140 x 150 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "تحطيب", Price: 40000, Image: "ne9 تحطيب 80 ×80  cm Acryic paint 40000.jpeg", Dimensions: "80x90 cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "قعدة رجالة", Price: 40000, Image: "ne10 قعدة رجالةAcrylic paint 60 ×80  cm 40000.jpeg", Dimensions: "60 ×80  cm", Type: "Acrylic paint", Date: "2023-01-20"},
	{Title: "Henna", Price: 20000, Image: "ne11 Henna Acrylic paint 240 ×150  cm.jpeg", Dimensions: "240 ×150  cm", Type: "Acrylic paint", Date: "2023-01-20"},
}

var seedIndex = func() map[string]int {
	idx := make(map[string]int, len(seedCatalog))
	for i := range seedCatalog {
		if seedCatalog[i].ID == "" {
			seedCatalog[i].ID = SeedID(seedCatalog[i].Title, seedCatalog[i].Dimensions)
		}
		idx[seedCatalog[i].ID] = i
	}
	return idx
}()

// SeedCatalog returns a fresh copy of the compiled-in paintings. Callers may
// modify the returned slice freely.
func SeedCatalog() []Painting {
	out := make([]Painting, len(seedCatalog))
	copy(out, seedCatalog)
	for i := range out {
		out[i].Origin = OriginSeed
	}
	return out
}

// IsSeedID reports whether id belongs to the compiled-in catalog.
func IsSeedID(id string) bool {
	_, ok := seedIndex[id]
	return ok
}
