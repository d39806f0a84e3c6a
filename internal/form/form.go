package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/gin-news/internal/model"
)

// Errors 表单字段名 -> 错误信息列表
type Errors map[string][]string

// Has 字段是否有错误
func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// Get 字段第一条错误
func (e Errors) Get(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e Errors) add(field, msg string) { e[field] = append(e[field], msg) }

// RegisterForm 注册表单
type RegisterForm struct {
	Username string `form:"username" validate:"min=4,max=25"`
	Email    string `form:"email" validate:"min=6,max=50"`
	Password string `form:"password" validate:"notblank,eqfield=Confirm" msg_eqfield:"Passwords do not match"`
	Confirm  string `form:"confirm"`
}

// PostForm 新建和编辑新闻共用
type PostForm struct {
	Title    string `form:"title" validate:"min=10"`
	Author   string `form:"author" validate:"min=4"`
	Category string `form:"category" validate:"category"`
	Content  string `form:"content" validate:"min=10"`
}

// FromPost 编辑页预填
func FromPost(p *model.Post) PostForm {
	return PostForm{Title: p.Title, Author: p.Author, Category: p.Category.String(), Content: p.Content}
}

// Apply 把表单值写入可修改字段
func (f PostForm) Apply(p *model.Post) {
	p.Title = f.Title
	p.Author = f.Author
	p.Category = model.Category(f.Category)
	p.Content = f.Content
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return model.Category(fl.Field().String()).Valid()
	})
	return v
}

// Validate 校验整张表单，返回 nil 表示通过
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"": {err.Error()}}
	}

	out := Errors{}
	t := reflect.Indirect(reflect.ValueOf(form)).Type()
	for _, fe := range verrs {
		out.add(fe.Field(), message(t, fe))
	}
	return out
}

// lengthBounds 读取字段 validate 标签中的 min/max
func lengthBounds(sf reflect.StructField) (lo, hi string) {
	for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
		name, param, _ := strings.Cut(rule, "=")
		switch name {
		case "min":
			lo = param
		case "max":
			hi = param
		}
	}
	return lo, hi
}

func message(t reflect.Type, fe validator.FieldError) string {
	sf, ok := t.FieldByName(fe.StructField())
	if ok {
		if custom := sf.Tag.Get("msg_" + fe.Tag()); custom != "" {
			return custom
		}
	}
	switch fe.Tag() {
	case "required", "notblank":
		return "This field is required."
	case "min", "max":
		if ok {
			if lo, hi := lengthBounds(sf); lo != "" && hi != "" {
				return fmt.Sprintf("Field must be between %s and %s characters long.", lo, hi)
			}
		}
		if fe.Tag() == "min" {
			return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
		}
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "eqfield":
		return fmt.Sprintf("Field must be equal to %s.", strings.ToLower(fe.Param()))
	case "category":
		return "Not a valid choice"
	default:
		return "Invalid value."
	}
}
