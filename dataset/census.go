// Package dataset holds the compiled-in census tables the timeline graph is
// drawn from.
package dataset

// Group is one historical census category and the years it was recorded in.
type Group struct {
	Name  string
	Years []int
}

// Dataset is the fixed input of a session: every census year that gets a
// node, the ordered categories and the bin boundaries.
type Dataset struct {
	Years  []int
	Groups []Group
	Bounds []int
}

// Group order matters: it decides each group's x slot in the layout.
var groups = []Group{
	{"white", []int{1790, 1800, 1810, 1820, 1830, 1840, 1850, 1860, 1870, 1880, 1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}},
	{"blackorMixed", []int{1850, 1860, 1870, 1880, 1890, 1910, 1920}},
	{"indian", []int{1860, 1870, 1880, 1890, 1900, 1910, 1920, 1930, 1940, 1950}},
	{"chinese", []int{1860, 1870, 1880, 1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}},
	{"japanese", []int{1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}},
	{"hindu", []int{1920, 1930, 1940}},
	{"korean", []int{1920, 1930, 1940, 1970, 1980, 1990, 2000, 2010, 2020}},
	{"philippino", []int{1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}},
	{"mexican", []int{1930, 1970}},
	{"partHawaiian", []int{1960}},
	{"hawaiian", []int{1960, 1970, 1980, 1990, 2000, 2010}},
	{"aleut", []int{1960, 1970, 1980, 1990}},
	{"americanIndian", []int{1960, 1970, 1980, 1990}},
	{"eskimo", []int{1960, 1980}},
	{"puertoRican", []int{1970, 1980, 1990, 2000, 2010, 2020}},
	{"cuban", []int{1970, 1980, 1990, 2000, 2010, 2020}},
	{"centralorSouthAmerican", []int{1970}},
	{"otherSpanish", []int{1970}},
	{"guamanian", []int{1980, 1990, 2000}},
	{"samoan", []int{1980, 1990, 2000, 2010, 2020}},
	{"vietanmese", []int{1980, 1990, 2000, 2010, 2020}},
	{"asianIndian", []int{1980, 1990, 2000, 2010, 2020}},
	{"mexicanMexicanAmericanChicano", []int{1980, 1990, 2000, 2010, 2020}},
	{"otherSpanishorHispanic", []int{1980, 1990}},
	{"otherAPI", []int{1990}},
	{"otherSpanishHispanicLatino", []int{2000, 2010, 2020}},
	{"americanIndianorAlaskaNative", []int{2000, 2010, 2020}},
	{"otherAsian", []int{2000, 2010, 2020}},
	{"guamanianorChamorro", []int{2000, 2010, 2020}},
	{"otherPacificIslander", []int{2000, 2010}},
	{"black", []int{1790, 1800, 1810, 1820, 1830, 1840, 1900, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}},
}

var years = []int{1790, 1800, 1810, 1820, 1830, 1840, 1850, 1860, 1870, 1880, 1890, 1900, 1910, 1920, 1930, 1940, 1950, 1960, 1970, 1980, 1990, 2000, 2010, 2020}

// 2030 is the sentinel closing the last bin.
var bounds = []int{1790, 1830, 1870, 1910, 1950, 1990, 2030}

// Census returns the US census table. The slices are fresh copies, so
// callers may keep them without worrying about aliasing.
func Census() Dataset {
	ds := Dataset{
		Years:  append([]int(nil), years...),
		Bounds: append([]int(nil), bounds...),
		Groups: make([]Group, len(groups)),
	}
	for i, g := range groups {
		ds.Groups[i] = Group{Name: g.Name, Years: append([]int(nil), g.Years...)}
	}
	return ds
}

// Names returns the group names in layout order.
func (d Dataset) Names() []string {
	out := make([]string, len(d.Groups))
	for i, g := range d.Groups {
		out[i] = g.Name
	}
	return out
}
