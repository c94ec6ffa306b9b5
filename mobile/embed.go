//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 构建前需要把根目录的 assets/ 和 data/ 复制到此目录：
//
//	cp -r assets data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/buttons.yaml
var dataFS embed.FS
