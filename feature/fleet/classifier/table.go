package classifier

var (
	unknown        = Event(Unknown)
	normal         = Event(Normal)
	swimsuit       = Event(Swimsuit)
	christmas      = Event(Christmas)
	newYear        = Event(NewYear)
	setsubun       = Event(Setsubun)
	valentine      = Event(Valentine)
	whiteDay       = Event(WhiteDay)
	rainySeason    = Event(RainySeason)
	summerFestival = Event(SummerFestival)
	autumn         = Event(Autumn)
	halloween      = Event(Halloween)

	// first and second stage bonus pages
	original0  = OriginalIllustration1(false)
	original1  = OriginalIllustration1(true)
	originalAB = OriginalIllustration2(false, true)
)

// DefaultTable returns the built-in classification table.
// Only entries whose event history has been confirmed by hand are listed.
// Each call returns a fresh table.
func DefaultTable() Table {
	return Table{
		1:   {original0, christmas},                         // 長門
		2:   {newYear, valentine},                           // 陸奥
		3:   {original0, rainySeason},                       // 伊勢
		4:   {autumn},                                       // 日向
		5:   {swimsuit, halloween},                          // 雪風
		6:   {original1},                                    // 赤城
		7:   {original1, newYear},                           // 加賀
		8:   {christmas},                                    // 蒼龍
		9:   {summerFestival},                               // 飛龍
		10:  {originalAB, christmas, setsubun},              // 島風
		11:  {swimsuit, original0},                          // 吹雪
		12:  {rainySeason},                                  // 白雪
		13:  {swimsuit, autumn},                             // 深雪
		14:  {whiteDay},                                     // 叢雲
		15:  {original0},                                    // 磯波
		16:  {swimsuit, christmas, halloween},               // 綾波
		17:  {setsubun},                                     // 敷波
		18:  {newYear, rainySeason},                         // 大井
		19:  {summerFestival, autumn},                       // 北上
		20:  {christmas},                                    // 金剛
		21:  {swimsuit, original0, newYear},                 // 比叡
		22:  {valentine},                                    // 榛名
		23:  {unknown, halloween},                           // 霧島
		24:  {christmas, newYear},                           // 鳳翔
		25:  {setsubun},                                     // 扶桑
		26:  {rainySeason, summerFestival},                  // 山城
		27:  {halloween},                                    // 天龍
		28:  {christmas, original1},                         // 龍田
		29:  {autumn},                                       // 龍驤
		30:  {swimsuit, whiteDay},                           // 睦月
		31:  {setsubun, valentine},                          // 如月
		32:  {swimsuit},                                     // 皐月
		33:  {summerFestival},                               // 文月
		34:  {halloween},                                    // 長月
		35:  {autumn},                                       // 菊月
		36:  {christmas},                                    // 三日月
		37:  {swimsuit, rainySeason},                        // 望月
		38:  {original0, summerFestival},                    // 球磨
		39:  {swimsuit},                                     // 多摩
		40:  {newYear},                                      // 木曾
		41:  {halloween, christmas},                         // 長良
		42:  {swimsuit, autumn},                             // 五十鈴
		43:  {summerFestival},                               // 名取
		44:  {rainySeason},                                  // 由良
		45:  {originalAB, setsubun},                         // 川内
		46:  {christmas},                                    // 神通
		47:  {swimsuit, halloween},                          // 那珂
		48:  {rainySeason},                                  // 千歳
		49:  {rainySeason},                                  // 千代田
		50:  {whiteDay},                                     // 最上
		51:  {autumn, christmas},                            // 古鷹
		52:  {newYear},                                      // 加古
		53:  {halloween},                                    // 青葉
		54:  {summerFestival, valentine},                    // 妙高
		55:  {swimsuit, christmas},                          // 那智
		56:  {setsubun},                                     // 足柄
		57:  {original0},                                    // 羽黒
		58:  {newYear, swimsuit},                            // 高雄
		59:  {christmas, autumn},                            // 愛宕
		60:  {rainySeason},                                  // 摩耶
		61:  {halloween, summerFestival},                    // 鳥海
		62:  {swimsuit, original0},                          // 利根
		63:  {setsubun},                                     // 筑摩
		64:  {original1, normal},                            // 飛鷹
		65:  {autumn},                                       // 隼鷹
		66:  {christmas, newYear, setsubun, valentine},      // 朧
		67:  {swimsuit},                                     // 曙
		68:  {swimsuit, halloween, christmas},               // 漣
		69:  {rainySeason, whiteDay},                        // 潮
		70:  {summerFestival},                               // 暁
		71:  {summerFestival},                               // 響
		72:  {summerFestival},                               // 雷
		73:  {summerFestival},                               // 電
		74:  {original0, swimsuit},                          // 初春
		75:  {autumn},                                       // 子日
		76:  {setsubun},                                     // 若葉
		77:  {newYear},                                      // 初霜
		78:  {halloween, valentine},                         // 白露
		79:  {swimsuit, rainySeason, christmas},             // 時雨
		80:  {swimsuit, original0, christmas, newYear},      // 村雨
		81:  {swimsuit, summerFestival, halloween},          // 夕立
		82:  {rainySeason},                                  // 五月雨
		83:  {whiteDay},                                     // 涼風
		84:  {summerFestival, setsubun},                     // 朝潮
		85:  {christmas},                                    // 大潮
		86:  {halloween},                                    // 満潮
		87:  {autumn},                                       // 荒潮
		88:  {swimsuit},                                     // 祥鳳
		89:  {newYear, swimsuit},                            // 翔鶴
		90:  {newYear, swimsuit},                            // 瑞鶴
		91:  {christmas, original1},                         // 鬼怒
		92:  {swimsuit},                                     // 阿武隈
		93:  {autumn, halloween},                            // 夕張
		94:  {summerFestival},                               // 瑞鳳
		95:  {rainySeason, summerFestival},                  // 三隈
		96:  {valentine},                                    // 初風
		97:  {swimsuit, autumn},                             // 舞風
		98:  {christmas},                                    // 衣笠
		99:  {newYear, originalAB},                          // 伊19
		100: {swimsuit},                                     // 伊58
		101: {swimsuit, summerFestival},                     // 伊8
		102: {halloween},                                    // 伊168
		103: {originalAB, swimsuit, christmas, rainySeason}, // 大和
		104: {original1, christmas},                         // 武蔵
		105: {setsubun},                                     // 大鯨
		106: {rainySeason},                                  // 秋月
		107: {autumn, whiteDay},                             // 照月
		108: {swimsuit},                                     // まるゆ
		109: {christmas, valentine},                         // 大淀
		110: {swimsuit, halloween},                          // 明石
		111: {newYear},                                      // 香取
		112: {rainySeason, original0},                       // 鹿島
		113: {summerFestival},                               // 春雨
		114: {swimsuit},                                     // 早霜
		115: {original0, newYear},                           // 浜風
		116: {setsubun},                                     // 谷風
		117: {christmas},                                    // 野分
		118: {summerFestival},                               // 嵐
		119: {whiteDay},                                     // 萩風
		120: {halloween},                                    // 秋雲
		148: {swimsuit, christmas},                          // 熊野
		149: {swimsuit, christmas},                          // 鈴谷
		150: {original1, rainySeason},                       // Bismarck
		151: {autumn},                                       // Prinz Eugen
		152: {christmas},                                    // Z1
		153: {valentine},                                    // Z3
		160: {swimsuit},                                     // Littorio
		161: {swimsuit, halloween},                          // Roma
		162: {newYear, original0},                           // Zara
		163: {autumn},                                       // Pola
		170: {christmas, setsubun},                          // 春日丸
		171: {swimsuit},                                     // U-511
		180: {valentine, whiteDay},                          // Warspite
		181: {halloween},                                    // Iowa
		182: {christmas},                                    // Гангут
		185: {swimsuit, summerFestival},                     // Gotland
		186: {summerFestival, original1},                    // Richelieu
		187: {christmas, swimsuit},                          // Saratoga
	}
}
