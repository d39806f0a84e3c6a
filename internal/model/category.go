package model

// Category 新闻分类，取值固定
type Category string

const (
	CategoryGeneral   Category = "General"
	CategoryLifeStyle Category = "Life Style"
	CategorySports    Category = "Sports"
	CategoryTravel    Category = "Travel"
)

// Categories 按表单展示顺序排列
var Categories = []Category{
	CategoryGeneral,
	CategoryLifeStyle,
	CategorySports,
	CategoryTravel,
}

// Valid 是否属于固定分类集合
func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }
