package blogservice

import (
	"github.com/ayumukasuga/bloglist/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.LengthBetween(title, 1, 500), "title", "must be at most 500 characters long")
}

func validateAuthor(v *common.Validator, author string) {
	v.Check(v.LengthBetween(author, 0, 200), "author", "must be at most 200 characters long")
}

func validateURL(v *common.Validator, url string) {
	v.Check(url != "", "url", "must be provided")
	v.Check(v.LengthBetween(url, 1, 1000), "url", "must be at most 1000 characters long")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "must not be negative")
}

func validateComment(v *common.Validator, text string) {
	v.Check(text != "", "text", "must be provided")
	v.Check(v.LengthBetween(text, 2, 1000), "text", "must be between 2 and 1000 characters long")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
