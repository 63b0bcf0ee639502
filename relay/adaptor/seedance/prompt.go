package seedance

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kingfer30/seedance-smoke/common/media"
)

// 匹配 @1, @2, @图1, @图2, @image1 等格式, 序号从 1 开始
var placeholderRegex = regexp.MustCompile(`(?i)@(?:图|image)?(\d+)`)

type Material struct {
	Type media.MaterialType
	Name string
}

type MetaItem struct {
	MetaType    string `json:"meta_type"`
	Text        string `json:"text,omitempty"`
	MaterialIdx *int   `json:"material_idx,omitempty"`
}

// ParseReferences returns the 1-based attachment numbers in prompt order.
func ParseReferences(prompt string) []int {
	var refs []int
	for _, match := range placeholderRegex.FindAllStringSubmatch(prompt, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		refs = append(refs, n)
	}
	return refs
}

// MissingReferences lists markers that point past the last attachment.
func MissingReferences(prompt string, attachments int) []int {
	var missing []int
	for _, n := range ParseReferences(prompt) {
		if n < 1 || n > attachments {
			missing = append(missing, n)
		}
	}
	return missing
}

// BuildMetaList splits prompt into text and material segments. Markers that
// point to no material are dropped. A prompt without markers references every
// material in order, followed by the prompt text.
func BuildMetaList(prompt string, materials []Material) []MetaItem {
	var metaList []MetaItem
	lastIndex := 0
	for _, loc := range placeholderRegex.FindAllStringSubmatchIndex(prompt, -1) {
		if loc[0] > lastIndex {
			textBefore := prompt[lastIndex:loc[0]]
			if strings.TrimSpace(textBefore) != "" {
				metaList = append(metaList, MetaItem{MetaType: "text", Text: textBefore})
			}
		}
		n, err := strconv.Atoi(prompt[loc[2]:loc[3]])
		idx := n - 1
		if err == nil && idx >= 0 && idx < len(materials) {
			metaList = append(metaList, MetaItem{MetaType: string(materials[idx].Type), MaterialIdx: &idx})
		}
		lastIndex = loc[1]
	}
	if lastIndex < len(prompt) {
		remaining := prompt[lastIndex:]
		if strings.TrimSpace(remaining) != "" {
			metaList = append(metaList, MetaItem{MetaType: "text", Text: remaining})
		}
	}

	if len(metaList) == 0 {
		for i := range materials {
			if i == 0 {
				metaList = append(metaList, MetaItem{MetaType: "text", Text: "使用"})
			}
			idx := i
			metaList = append(metaList, MetaItem{MetaType: string(materials[i].Type), MaterialIdx: &idx})
			if i < len(materials)-1 {
				metaList = append(metaList, MetaItem{MetaType: "text", Text: "和"})
			}
		}
		if strings.TrimSpace(prompt) != "" {
			metaList = append(metaList, MetaItem{MetaType: "text", Text: "素材，" + prompt})
		} else {
			metaList = append(metaList, MetaItem{MetaType: "text", Text: "素材生成视频"})
		}
	}
	return metaList
}

// RenderPrompt flattens the meta list, writing each material as [type:name].
func RenderPrompt(prompt string, materials []Material) string {
	var sb strings.Builder
	for _, item := range BuildMetaList(prompt, materials) {
		if item.MaterialIdx == nil {
			sb.WriteString(item.Text)
			continue
		}
		m := materials[*item.MaterialIdx]
		sb.WriteString(fmt.Sprintf("[%s:%s]", m.Type, m.Name))
	}
	return sb.String()
}
