package validate

import (
	"errors"
	"reflect"
	"sync"

	"github.com/everbuy/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagCartQuantity 购物车数量校验标签
const TagCartQuantity = "cartqty"

var registerOnce sync.Once

// Register 向 gin 默认校验器注册自定义规则，可重复调用
func Register() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation(TagCartQuantity, ValidateCartQuantity)
	})
}

// ValidateCartQuantity 数量不得超过单行上限；<= 0 由业务层按删除处理
func ValidateCartQuantity(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() <= service.MaxLineQuantity
	default:
		return false
	}
}

// HasTag 判断校验错误中是否包含指定标签
func HasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
