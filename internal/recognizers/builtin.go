// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import "mingjing-scan/internal/validators"

// BuiltinRules returns the rule set that ships with the module. The registry
// seeds itself from this list; a rules file may override any of these
// definitions but cannot remove them.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:        "中国身份证",
			EntityType:  validators.EntityIDCard,
			Description: "18位居民身份证号（GB 11643-1999）",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN ID Card Standard", Regex: `[1-6]\d{5}(?:19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[\dXx]`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "CN ID Card Loose Province", Regex: `[1-9]\d{5}(?:19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[\dXx]`, Score: 0.4, Boundary: BoundaryDigit},
				{Name: "CN ID Card Relaxed", Regex: `\d{17}[\dXx]`, Score: 0.25, Boundary: BoundaryDigit},
			},
			Context: []string{
				"身份证", "身份证号", "身份证号码", "证件号", "证件号码", "公民身份号码",
				"id card", "id number", "identity card", "citizen id",
			},
		},
		{
			Name:        "中国手机号",
			EntityType:  validators.EntityPhone,
			Description: "手机号、固话和服务号码",
			Category:    "联系方式",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Mobile With Country Code", Regex: `(?:(?:\+|00)86[-\s]?)1[3-9]\d{9}`, Score: 0.75, Boundary: BoundaryDigit},
				{Name: "CN Mobile Valid Segment", Regex: `1(?:3[0-9]|4[5-9]|5[0-35-9]|6[2567]|7[0-8]|8[0-9]|9[0-35-9])\d{8}`, Score: 0.55, Boundary: BoundaryDigit},
				{Name: "CN Mobile Separated", Regex: `1[3-9]\d[-\s]\d{4}[-\s]\d{4}`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "CN Landline", Regex: `0(?:10|2[0-9]|[3-9]\d{2})[-\s]?\d{7,8}`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "CN Landline Parenthesized", Regex: `\(0(?:10|2[0-9]|[3-9]\d{2})\)[-\s]?\d{7,8}`, Score: 0.55, Boundary: BoundaryDigit},
				{Name: "CN Service Number", Regex: `(?:400|800)[-\s]?\d{3}[-\s]?\d{4}`, Score: 0.6, Boundary: BoundaryDigit},
				{Name: "CN Mobile Generic", Regex: `1[3-9]\d{9}`, Score: 0.4, Boundary: BoundaryDigit},
			},
			Context: []string{
				"手机", "手机号", "手机号码", "电话", "电话号码", "联系电话", "联系方式", "座机", "传真",
				"phone", "mobile", "tel", "telephone", "contact", "fax",
			},
		},
		{
			Name:        "银行卡号",
			EntityType:  validators.EntityBankCard,
			Description: "银联、Visa、MasterCard等银行卡号",
			Category:    "金融",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Bank Card UnionPay 16", Regex: `62[0-9]{14}`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "CN Bank Card UnionPay 19", Regex: `62[0-9]{17}`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "CN Bank Card Visa", Regex: `4[0-9]{15}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card MasterCard", Regex: `(?:5[1-5][0-9]{14}|2(?:2[2-9][0-9]{12}|[3-6][0-9]{13}|7[01][0-9]{12}|720[0-9]{12}))`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card JCB", Regex: `35[0-9]{14}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card Amex", Regex: `3[47][0-9]{13}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card Separated 16", Regex: `[3-6][0-9]{3}[-\s][0-9]{4}[-\s][0-9]{4}[-\s][0-9]{4}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card Separated 19", Regex: `[3-6][0-9]{3}[-\s][0-9]{4}[-\s][0-9]{4}[-\s][0-9]{4}[-\s][0-9]{3}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Bank Card Generic", Regex: `[3-6][0-9]{15,18}`, Score: 0.3, Boundary: BoundaryDigit},
			},
			Context: []string{
				"银行卡", "银行卡号", "卡号", "储蓄卡", "信用卡", "借记卡", "账号", "账户", "开户行",
				"bank card", "card number", "account", "debit card", "credit card", "unionpay",
			},
		},
		{
			Name:        "统一社会信用代码",
			EntityType:  validators.EntitySocialCredit,
			Description: "18位统一社会信用代码（GB 32100-2015）",
			Category:    "企业",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Social Credit Code (High)", Regex: `[1-9A-GY][1-9A-HJ-NP-RT-UW-Y][0-9]{6}[0-9A-HJ-NP-RT-UW-Y]{9}[0-9A-HJ-NP-RT-UW-Y]`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Social Credit Code (Medium)", Regex: `[0-9A-HJ-NP-RT-UW-Y]{18}`, Score: 0.4, Boundary: BoundaryAlnum},
				{Name: "CN Social Credit Code (Separated)", Regex: `[0-9A-HJ-NP-RT-UW-Y]{2}[-\s]?[0-9]{6}[-\s]?[0-9A-HJ-NP-RT-UW-Y]{10}`, Score: 0.5, Boundary: BoundaryAlnum},
			},
			Context: []string{
				"统一社会信用代码", "信用代码", "营业执照", "注册号", "组织机构代码", "纳税人识别号",
				"social credit code", "uscc", "business license", "tax id",
			},
		},
		{
			Name:        "护照号",
			EntityType:  validators.EntityPassport,
			Description: "中国护照和通行证号码",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Passport Ordinary (High)", Regex: `E[0-9]{8}`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Passport Ordinary Prefix", Regex: `E[A-E][0-9]{7}`, Score: 0.55, Boundary: BoundaryAlnum},
				{Name: "CN Passport Diplomatic", Regex: `D[0-9]{8}`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Passport Service", Regex: `SE?[0-9]{7,8}`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Passport Public", Regex: `P[0-9]{8}`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Passport Old G", Regex: `G[0-9]{8}`, Score: 0.5, Boundary: BoundaryAlnum},
				{Name: "CN Passport Old Numeric", Regex: `1[45][0-9]{7}`, Score: 0.45, Boundary: BoundaryDigit},
				{Name: "CN Travel Permit HK Macau", Regex: `[CW][0-9]{8}`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Travel Permit Taiwan", Regex: `[LT][0-9]{8}`, Score: 0.6, Boundary: BoundaryAlnum},
			},
			Context: []string{
				"护照", "护照号", "护照号码", "通行证", "港澳通行证", "台湾通行证", "出入境",
				"passport", "passport number", "travel document", "travel permit",
			},
		},
		{
			Name:        "驾驶证号",
			EntityType:  validators.EntityDriverLicense,
			Description: "机动车驾驶证号",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Driver License 18", Regex: `[1-6]\d{5}(?:19|20)\d{2}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}[\dXx]`, Score: 0.4, Boundary: BoundaryDigit},
				{Name: "CN Driver License 15", Regex: `[1-6]\d{7}(?:0[1-9]|1[0-2])(?:0[1-9]|[12]\d|3[01])\d{3}`, Score: 0.3, Boundary: BoundaryDigit},
				{Name: "CN Driver License Archive", Regex: `\d{12}`, Score: 0.2, Boundary: BoundaryDigit},
			},
			Context: []string{
				"驾驶证", "驾照", "驾驶证号", "档案编号", "准驾车型",
				"driver license", "driving license", "license number",
			},
		},
		{
			Name:        "医疗执业证号",
			EntityType:  validators.EntityMedical,
			Description: "医师、护士、药师执业证书编号",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Medical License 15", Regex: `\d{15}`, Score: 0.2, Boundary: BoundaryDigit},
				{Name: "CN Medical License Prefixed", Regex: `(?:医师|护士|药师)(?:执业)?(?:证书)?(?:编号)?[：:\s]*[0-9]{10,18}`, Score: 0.6, Boundary: BoundaryNone},
				{Name: "CN Medical Qualification", Regex: `资格证书(?:编号)?[：:\s]*[0-9]{10,18}`, Score: 0.6, Boundary: BoundaryNone},
			},
			Context: []string{
				"医师", "护士", "药师", "执业证书", "执业证", "资格证书", "执业医师", "医疗机构",
				"medical license", "nurse license", "pharmacist license",
			},
		},
		{
			Name:        "军人证件号",
			EntityType:  validators.EntityMilitary,
			Description: "军官证、士兵证等军人证件号",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Military ID Full", Regex: `[军士文参学]字第[0-9]{6,10}号`, Score: 0.85, Boundary: BoundaryNone},
				{Name: "CN Military ID Prefix", Regex: `[军士文参学]字第[0-9]{6,10}`, Score: 0.75, Boundary: BoundaryDigit},
				{Name: "CN Retired Military ID", Regex: `退[役伍]?[军兵]?[人员]?[证号]?[：:]\s*[A-Z0-9]{8,18}`, Score: 0.7, Boundary: BoundaryNone},
			},
			Context: []string{
				"军官证", "士兵证", "军人证", "文职干部证", "退役军人证", "军字第", "士字第", "部队",
				"military id", "officer id", "soldier id",
			},
		},
		{
			Name:        "车牌号",
			EntityType:  validators.EntityPlate,
			Description: "民用、新能源、军用及使馆车牌",
			Category:    "个人身份",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Vehicle Plate Regular", Regex: `[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼][A-HJ-NP-Z][A-HJ-NP-Z0-9]{4}[A-HJ-NP-Z0-9挂学警港澳]`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Vehicle Plate New Energy", Regex: `[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼][A-HJ-NP-Z][A-HJ-NP-Z0-9]{5}[A-HJ-NP-Z0-9]`, Score: 0.6, Boundary: BoundaryAlnum},
				{Name: "CN Vehicle Plate Separated", Regex: `[京津沪渝冀豫云辽黑湘皖鲁新苏浙赣鄂桂甘晋蒙陕吉闽贵粤青藏川宁琼][A-HJ-NP-Z][·\-]?[A-HJ-NP-Z0-9]{5,6}`, Score: 0.5, Boundary: BoundaryAlnum},
				{Name: "CN Vehicle Plate Military", Regex: `[军空海北沈兰济南广成][A-Z][A-Z0-9]{5}`, Score: 0.65, Boundary: BoundaryAlnum},
				{Name: "CN Vehicle Plate Embassy", Regex: `使[0-9]{5}`, Score: 0.6, Boundary: BoundaryDigit},
			},
			Context: []string{
				"车牌", "车牌号", "号牌", "牌照", "机动车", "行驶证",
				"license plate", "plate number", "vehicle plate",
			},
		},
		{
			Name:        "电子邮箱",
			EntityType:  validators.EntityEmail,
			Description: "电子邮箱地址",
			Category:    "联系方式",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "Email QQ", Regex: `[0-9]{5,11}@qq\.com`, Score: 0.7, Boundary: BoundaryEmail},
				{Name: "Email 163", Regex: `[A-Za-z0-9._%+-]+@(?:163|126)\.com`, Score: 0.65, Boundary: BoundaryEmail},
				{Name: "Email Sina", Regex: `[A-Za-z0-9._%+-]+@(?:sina|vip\.sina)\.(?:com|cn)`, Score: 0.6, Boundary: BoundaryEmail},
				{Name: "Email Alibaba", Regex: `[A-Za-z0-9._%+-]+@(?:aliyun|alibaba|taobao)\.com`, Score: 0.65, Boundary: BoundaryEmail},
				{Name: "Email Standard", Regex: `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`, Score: 0.4, Boundary: BoundaryEmail},
			},
			Context: []string{
				"邮箱", "电子邮箱", "电子邮件", "邮件", "收件人", "发件人",
				"email", "e-mail", "mail", "mailbox",
			},
		},
		{
			Name:        "邮政编码",
			EntityType:  validators.EntityPostalCode,
			Description: "6位邮政编码",
			Category:    "联系方式",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "CN Postal Code (High)", Regex: `(?:0[1-9]|[1-7][0-9]|8[0-2])\d{4}`, Score: 0.4, Boundary: BoundaryDigit},
				{Name: "CN Postal Code (Low)", Regex: `\d{6}`, Score: 0.1, Boundary: BoundaryDigit},
			},
			Context: []string{
				"邮编", "邮政编码", "邮码",
				"postal code", "postcode", "zip code", "zip",
			},
		},
		{
			Name:        "IP地址",
			EntityType:  validators.EntityIPAddress,
			Description: "IPv4/IPv6地址",
			Category:    "网络",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "IP Private Class A", Regex: `10\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`, Score: 0.7, Boundary: BoundaryDigit},
				{Name: "IP Private Class B", Regex: `172\.(?:1[6-9]|2[0-9]|3[01])\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`, Score: 0.7, Boundary: BoundaryDigit},
				{Name: "IP Private Class C", Regex: `192\.168\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`, Score: 0.7, Boundary: BoundaryDigit},
				{Name: "IP With Port", Regex: `(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?):[0-9]{1,5}`, Score: 0.5, Boundary: BoundaryDigit},
				{Name: "IPv4 Address", Regex: `(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`, Score: 0.4, Boundary: BoundaryDigit},
				{Name: "IPv6 Address", Regex: `(?:[A-Fa-f0-9]{1,4}:){7}[A-Fa-f0-9]{1,4}`, Score: 0.5, Boundary: BoundaryAlnum},
			},
			Context: []string{
				"IP", "IP地址", "服务器地址", "主机地址", "内网", "外网",
				"ip address", "host", "server", "gateway", "subnet",
			},
		},
		{
			Name:        "MAC地址",
			EntityType:  validators.EntityMACAddress,
			Description: "网卡物理地址",
			Category:    "网络",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "MAC Colon", Regex: `(?:[A-Fa-f0-9]{2}:){5}[A-Fa-f0-9]{2}`, Score: 0.7, Boundary: BoundaryAlnum},
				{Name: "MAC Hyphen", Regex: `(?:[A-Fa-f0-9]{2}-){5}[A-Fa-f0-9]{2}`, Score: 0.7, Boundary: BoundaryAlnum},
				{Name: "MAC Dot", Regex: `[A-Fa-f0-9]{4}\.[A-Fa-f0-9]{4}\.[A-Fa-f0-9]{4}`, Score: 0.7, Boundary: BoundaryAlnum},
			},
			Context: []string{
				"MAC", "MAC地址", "物理地址", "硬件地址", "网卡地址",
				"mac address", "physical address", "hardware address", "ethernet",
			},
		},
		{
			Name:        "JWT令牌",
			EntityType:  validators.EntityJWT,
			Description: "JSON Web Token",
			Category:    "凭证",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "JWT Standard", Regex: `eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`, Score: 0.85, Boundary: BoundaryToken},
				{Name: "JWT Unsecured", Regex: `eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.`, Score: 0.7, Boundary: BoundaryToken},
			},
			Context: []string{
				"token", "令牌", "jwt", "bearer", "authorization", "access token", "refresh token",
			},
		},
		{
			Name:        "云服务密钥",
			EntityType:  validators.EntityCloudKey,
			Description: "阿里云、腾讯云、AWS等访问密钥",
			Category:    "凭证",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "Alibaba Cloud AccessKey", Regex: `LTAI[A-Za-z0-9]{12,20}`, Score: 0.85, Boundary: BoundaryAlnum},
				{Name: "Tencent Cloud SecretId", Regex: `AKID[A-Za-z0-9]{32}`, Score: 0.85, Boundary: BoundaryAlnum},
				{Name: "AWS AccessKey", Regex: `AKIA[0-9A-Z]{16}`, Score: 0.85, Boundary: BoundaryAlnum},
				{Name: "Generic AccessKey", Regex: `(?i)(?:access[_-]?key[_-]?(?:id|secret)?|secret[_-]?key|api[_-]?key|app[_-]?key|app[_-]?secret)\s*[=:]\s*['"]?[A-Za-z0-9_\-]{16,64}['"]?`, Score: 0.6, Boundary: BoundaryNone},
			},
			Context: []string{
				"密钥", "访问密钥", "accesskey", "secretkey", "api key", "app secret",
				"阿里云", "腾讯云", "aws", "aliyun", "credential",
			},
		},
		{
			Name:        "数据库连接串",
			EntityType:  validators.EntityJDBC,
			Description: "JDBC/MongoDB/Redis等数据库连接字符串",
			Category:    "凭证",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "JDBC MySQL", Regex: `jdbc:mysql://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "JDBC PostgreSQL", Regex: `jdbc:postgresql://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "JDBC Oracle", Regex: `jdbc:oracle:[a-z]+:@[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "JDBC SQLServer", Regex: `jdbc:sqlserver://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "JDBC MongoDB", Regex: `mongodb(?:\+srv)?://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "Redis Connection", Regex: `redis://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.7, Boundary: BoundaryNone},
				{Name: "JDBC Generic", Regex: `jdbc:[a-z0-9]+://[A-Za-z0-9.\-_:;=/@?,&]+`, Score: 0.6, Boundary: BoundaryNone},
			},
			Context: []string{
				"数据库", "连接串", "连接字符串", "jdbc", "datasource", "connection",
				"mysql", "postgresql", "oracle", "mongodb", "redis",
			},
		},
		{
			Name:        "微信标识",
			EntityType:  validators.EntityWeChatID,
			Description: "微信OpenID、企业微信CorpID、AppID",
			Category:    "凭证",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "WeChat OpenID", Regex: `o[A-Za-z0-9_-]{27}`, Score: 0.7, Boundary: BoundaryToken},
				{Name: "WeCom CorpID", Regex: `ww[a-f0-9]{16}`, Score: 0.8, Boundary: BoundaryAlnum},
				{Name: "WeChat AppID", Regex: `wx[a-f0-9]{16}`, Score: 0.7, Boundary: BoundaryAlnum},
			},
			Context: []string{
				"微信", "openid", "unionid", "appid", "corpid", "小程序", "公众号",
				"wechat", "weixin", "mini program",
			},
		},
		{
			Name:        "敏感凭证字段",
			EntityType:  validators.EntityCredential,
			Description: "配置中的密码、密钥字段和私钥块",
			Category:    "凭证",
			Source:      "builtin",
			Enabled:     true,
			Patterns: []PatternConfig{
				{Name: "Password Field", Regex: `(?i)['"]?(?:password|passwd|pwd|pass)['"]?\s*[:=]\s*['"][^'"]{1,100}['"]`, Score: 0.8, Boundary: BoundaryNone},
				{Name: "Secret Field", Regex: `(?i)['"]?(?:secret|token|api[_-]?key|app[_-]?key|access[_-]?key)['"]?\s*[:=]\s*['"][^'"]{1,100}['"]`, Score: 0.7, Boundary: BoundaryNone},
				{Name: "Password Query String", Regex: `(?i)(?:password|passwd|pwd|pass)=[^&\s]{1,100}`, Score: 0.6, Boundary: BoundaryNone},
				{Name: "Private Key", Regex: `-----BEGIN (?:RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`, Score: 0.9, Boundary: BoundaryNone},
			},
			Context: []string{
				"密码", "口令", "密钥", "私钥", "凭证",
				"password", "secret", "token", "credential", "private key",
			},
		},
	}
}
