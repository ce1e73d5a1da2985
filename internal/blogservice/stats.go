package blogservice

// TopBlog is the reduced blog representation returned by FavoriteBlog.
type TopBlog struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Likes  int    `json:"likes"`
}

type AuthorBlogCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikeCount struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Stats is the aggregate view of the whole blog collection.
type Stats struct {
	Blogs      int              `json:"blogs"`
	TotalLikes int              `json:"total_likes"`
	Favorite   *TopBlog         `json:"favorite_blog"`
	MostBlogs  *AuthorBlogCount `json:"most_blogs"`
	MostLikes  *AuthorLikeCount `json:"most_likes"`
}

// TotalLikes sums the likes across all blogs. An empty collection sums to
// zero.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// FavoriteBlog returns the blog with the highest like count, or nil for an
// empty collection. When several blogs share the highest count the first one
// wins.
func FavoriteBlog(blogs []Blog) *TopBlog {
	var favorite *TopBlog

	for _, b := range blogs {
		if favorite == nil || b.Likes > favorite.Likes {
			favorite = &TopBlog{
				Title:  b.Title,
				Author: b.Author,
				Likes:  b.Likes,
			}
		}
	}

	return favorite
}

// MostBlogs returns the author with the largest number of blogs, or nil for an
// empty collection. Ties resolve to the lexicographically smallest author so
// the result does not depend on input order.
func MostBlogs(blogs []Blog) *AuthorBlogCount {
	counts := make(map[string]int)
	for _, b := range blogs {
		counts[b.Author]++
	}

	var top *AuthorBlogCount
	for author, count := range counts {
		if top == nil || count > top.Blogs || (count == top.Blogs && author < top.Author) {
			top = &AuthorBlogCount{Author: author, Blogs: count}
		}
	}

	return top
}

// MostLikes returns the author whose blogs have the largest combined like
// count, or nil for an empty collection. Ties resolve to the lexicographically
// smallest author.
func MostLikes(blogs []Blog) *AuthorLikeCount {
	likes := make(map[string]int)
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}

	var top *AuthorLikeCount
	for author, total := range likes {
		if top == nil || total > top.Likes || (total == top.Likes && author < top.Author) {
			top = &AuthorLikeCount{Author: author, Likes: total}
		}
	}

	return top
}

// Summarize computes every aggregate over the collection.
func Summarize(blogs []Blog) *Stats {
	return &Stats{
		Blogs:      len(blogs),
		TotalLikes: TotalLikes(blogs),
		Favorite:   FavoriteBlog(blogs),
		MostBlogs:  MostBlogs(blogs),
		MostLikes:  MostLikes(blogs),
	}
}
